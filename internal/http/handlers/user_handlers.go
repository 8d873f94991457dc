package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/domain"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
)

// UserHandlers handles profile HTTP requests
type UserHandlers struct {
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc}
}

// GetUserData returns the authenticated user's profile projection.
// Unlike the other not-found cases this one is a 404.
func (h *UserHandlers) GetUserData(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		zap.L().Error("get user data failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": domain.Profile{
			Name:       user.Name,
			IsVerified: user.IsVerified,
		},
	})
}
