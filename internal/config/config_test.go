package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `app:
  port: 4000
  env: development
  allowed_origins:
    - http://localhost:5173

mongo:
  uri: mongodb://localhost:27017
  database: Authentication

jwt:
  secret: file-secret
  issuer: authentication-system
  session_ttl: 168h

otp:
  verify_ttl: 24h
  reset_ttl: 15m

smtp:
  host: smtp.example.com
  port: 587
  username: mailer
  password: file-password
  sender: noreply@example.com
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "Authentication", cfg.MongoDatabase)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.VerifyOTPTTL)
	assert.Equal(t, 15*time.Minute, cfg.ResetOTPTTL)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "noreply@example.com", cfg.SenderEmail)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadDuration(t *testing.T) {
	bad := strings.Replace(testConfigYAML, "session_ttl: 168h", "session_ttl: notaduration", 1)
	t.Setenv("CONFIG_PATH", writeTestConfig(t, bad))

	_, err := Load()
	assert.Error(t, err)
}
