package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/domain"
	"github.com/sayakroy83/Authentication-System/internal/http/handlers"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
	"github.com/sayakroy83/Authentication-System/internal/mocks"
)

const testOrigin = "http://localhost:5173"

func newTestRouter(authSvc *mocks.MockAuthService, tokenSvc *mocks.MockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := handlers.NewAuthHandlers(authSvc, handlers.NewCookieSettings(false, 3600))
	uh := handlers.NewUserHandlers(authSvc)
	return BuildRouter(ah, uh, middleware.NewSessionMW(tokenSvc), []string{testOrigin}, zap.NewNop())
}

func TestBuildRouter_CORSPreflight(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{
			name:        "configured origin is allowed with credentials",
			origin:      testOrigin,
			wantStatus:  http.StatusNoContent,
			wantAllowed: true,
		},
		{
			name:       "unknown origin is rejected",
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

			req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			allowOrigin := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				if allowOrigin != tt.origin {
					t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.origin, allowOrigin)
				}
				if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
					t.Error("expected Access-Control-Allow-Credentials true")
				}
			} else if allowOrigin != "" {
				t.Errorf("expected no Access-Control-Allow-Origin, got %q", allowOrigin)
			}
		})
	}
}

func TestBuildRouter_ProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/send-verify-otp"},
		{http.MethodPost, "/api/auth/verify-email"},
		{http.MethodGet, "/api/auth/is-auth"},
		{http.MethodGet, "/api/user/data"},
	}

	for _, route := range protected {
		t.Run(route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 without cookie, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Unauthorized access") {
				t.Errorf("unexpected body %q", w.Body.String())
			}
		})
	}
}

func TestBuildRouter_SessionCookieGrantsAccess(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.GetUserProfileFunc = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{Name: "Test User", IsVerified: true}, nil
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.SessionClaims, error) {
		if token != "valid-session" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.SessionClaims{UserID: "user-1"}, nil
	}
	r := newTestRouter(authSvc, tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "valid-session"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Test User") {
		t.Errorf("expected profile in body, got %q", w.Body.String())
	}
}

func TestBuildRouter_LogoutEndsSession(t *testing.T) {
	r := newTestRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", w.Code)
	}
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected logout to clear the session cookie")
	}

	// With the cookie gone the account routes reject again.
	after := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, after)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestBuildRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 for %s, got %d", path, w.Code)
		}
	}
}
