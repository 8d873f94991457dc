package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sayakroy83/Authentication-System/domain"
)

// SessionMW wraps the token service for route wiring
type SessionMW struct {
	tokenSvc domain.TokenService
}

// NewSessionMW creates a new session middleware wrapper
func NewSessionMW(tokenSvc domain.TokenService) *SessionMW {
	return &SessionMW{tokenSvc: tokenSvc}
}

// WithSession returns the session cookie middleware function
func (mw *SessionMW) WithSession() gin.HandlerFunc {
	return SessionMiddleware(mw.tokenSvc)
}
