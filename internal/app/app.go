package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/internal/config"
	"github.com/sayakroy83/Authentication-System/internal/http/handlers"
	httpx "github.com/sayakroy83/Authentication-System/internal/http"
	"github.com/sayakroy83/Authentication-System/internal/http/middleware"
)

// Run builds the dependency container and serves the API.
func Run(cfg *config.Config) error {
	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	cookies := handlers.NewCookieSettings(cfg.IsProduction(), int(cfg.SessionTTL.Seconds()))
	authH := handlers.NewAuthHandlers(container.AuthSvc, cookies)
	userH := handlers.NewUserHandlers(container.AuthSvc)
	sessionMW := middleware.NewSessionMW(container.TokenSvc)

	r := httpx.BuildRouter(authH, userH, sessionMW, cfg.AllowedOrigins, zap.L())

	addr := ":" + cfg.Port
	zap.L().Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
