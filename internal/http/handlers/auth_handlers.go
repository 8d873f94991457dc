package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/domain"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
)

// CookieSettings controls the session cookie attributes. In production
// the cookie is secure with SameSite=None so the SPA can call the API
// cross-origin; elsewhere it is SameSite=Strict.
type CookieSettings struct {
	MaxAge   int
	Secure   bool
	SameSite http.SameSite
}

// NewCookieSettings derives the session cookie attributes from the
// deploy environment and the session TTL in seconds.
func NewCookieSettings(production bool, maxAge int) CookieSettings {
	settings := CookieSettings{
		MaxAge:   maxAge,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		settings.SameSite = http.SameSiteNoneMode
	}
	return settings
}

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	cookies CookieSettings
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookies CookieSettings) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, cookies: cookies}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest represents an email verification request
type VerifyEmailRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// SendResetOTPRequest represents a password reset OTP request
type SendResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie("token", token, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie("token", "", -1, "/", "", h.cookies.Secure, true)
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required details"})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		// The user record may already be persisted when the welcome
		// mail fails; the caller still sees a 500.
		zap.L().Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register user"})
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful"})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid password"})
		default:
			zap.L().Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

// Logout clears the session cookie. Logout is idempotent and cannot
// revoke an already issued token.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// SendVerifyOTP issues an email verification code for the
// authenticated user
func (h *AuthHandlers) SendVerifyOTP(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	err := h.authSvc.SendVerifyOTP(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already verified"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
		default:
			zap.L().Error("send verify otp failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your email"})
}

// VerifyEmail consumes a verification code for the authenticated user
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User ID and OTP are required"})
		return
	}

	err := h.authSvc.VerifyEmail(c.Request.Context(), userID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP expired"})
		default:
			zap.L().Error("verify email failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Email verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified successfully"})
}

// IsAuthenticated only reports success; the session middleware has
// already rejected any request that reaches it without a valid token.
func (h *AuthHandlers) IsAuthenticated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User is authenticated"})
}

// SendResetOTP issues a password reset code
func (h *AuthHandlers) SendResetOTP(c *gin.Context) {
	var req SendResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}

	err := h.authSvc.SendResetOTP(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
			return
		}
		zap.L().Error("send reset otp failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your email"})
}

// ResetPassword consumes a reset code and replaces the password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, OTP and password are required"})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP expired"})
		default:
			zap.L().Error("reset password failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Password reset failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}
