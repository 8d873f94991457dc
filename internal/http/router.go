package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/internal/http/handlers"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
)

// BuildRouter wires all routes. Only the configured origins may call
// the API with credentials, since the session rides in a cookie.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, sessionMW *middleware.SessionMW, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)

	r.GET("/", func(c *gin.Context) { c.String(200, "Authentication System API") })
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/send-reset-otp", ah.SendResetOTP)
	auth.POST("/reset-password", ah.ResetPassword)

	authed := r.Group("/api").Use(sessionMW.WithSession())
	authed.POST("/auth/send-verify-otp", ah.SendVerifyOTP)
	authed.POST("/auth/verify-email", ah.VerifyEmail)
	authed.GET("/auth/is-auth", ah.IsAuthenticated)
	authed.GET("/user/data", uh.GetUserData)

	return r
}
