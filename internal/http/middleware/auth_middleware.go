package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sayakroy83/Authentication-System/domain"
)

// UserIDKey is the context key under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "userID"

// SessionMiddleware authenticates a request from the session cookie.
// Every request re-verifies the token from scratch; no session state is
// kept between requests. Any verification failure rejects with 401.
func SessionMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized access",
			})
			return
		}

		claims, err := tokenSvc.ValidateSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized access",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	})
}
