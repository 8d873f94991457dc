package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayakroy83/Authentication-System/domain"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
	"github.com/sayakroy83/Authentication-System/internal/mocks"
)

func newUserTestRouter(authSvc domain.AuthService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandlers(authSvc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) })
	r.GET("/api/user/data", h.GetUserData)
	return r
}

func TestUserHandlers_GetUserData(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns the profile projection", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.GetUserProfileFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{
				ID:           userID,
				Name:         "Some User",
				Email:        "user@example.com",
				PasswordHash: "hashed_secret",
				IsVerified:   true,
				VerifyOTP:    "123456",
			}, nil
		}
		r := newUserTestRouter(authSvc, userID.Hex())

		req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Name       string `json:"name"`
				IsVerified bool   `json:"isVerified"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Data.Name != "Some User" || !body.Data.IsVerified {
			t.Errorf("unexpected body: %+v", body)
		}

		// The projection must never leak credentials or OTP state.
		raw := w.Body.String()
		for _, forbidden := range []string{"hashed_secret", "123456", "password", "otp"} {
			if strings.Contains(raw, forbidden) {
				t.Errorf("response leaks %q: %s", forbidden, raw)
			}
		}
	})

	t.Run("missing user is a 404", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.GetUserProfileFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		}
		r := newUserTestRouter(authSvc, userID.Hex())

		req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
