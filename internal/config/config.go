package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type OTPConfig struct {
	VerifyTTL string `yaml:"verify_ttl"`
	ResetTTL  string `yaml:"reset_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
}

type ConfigFile struct {
	App   AppConfig   `yaml:"app"`
	Mongo MongoConfig `yaml:"mongo"`
	JWT   JWTConfig   `yaml:"jwt"`
	OTP   OTPConfig   `yaml:"otp"`
	SMTP  SMTPConfig  `yaml:"smtp"`
}

type Config struct {
	Port           string
	Env            string
	AllowedOrigins []string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	JWTIssuer      string
	SessionTTL     time.Duration
	VerifyOTPTTL   time.Duration
	ResetOTPTTL    time.Duration
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// IsProduction controls the cookie secure/sameSite attributes.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	verifyTTL, err := time.ParseDuration(configFile.OTP.VerifyTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verify OTP TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(configFile.OTP.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset OTP TTL: %w", err)
	}

	smtpPort := configFile.SMTP.Port
	if v := os.Getenv("SMTP_PORT"); v != "" {
		smtpPort, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	allowedOrigins := configFile.App.AllowedOrigins
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		allowedOrigins = splitOrigins(v)
	}

	// Secrets and deploy-facing values come from the environment when
	// present; the file only provides development defaults.
	return &Config{
		Port:           env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		Env:            env("APP_ENV", configFile.App.Env),
		AllowedOrigins: allowedOrigins,
		MongoURI:       env("MONGODB_URI", configFile.Mongo.URI),
		MongoDatabase:  env("MONGODB_DATABASE", configFile.Mongo.Database),
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      configFile.JWT.Issuer,
		SessionTTL:     sessionTTL,
		VerifyOTPTTL:   verifyTTL,
		ResetOTPTTL:    resetTTL,
		SMTPHost:       env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:       smtpPort,
		SMTPUsername:   env("SMTP_USER", configFile.SMTP.Username),
		SMTPPassword:   env("SMTP_PASSWORD", configFile.SMTP.Password),
		SenderEmail:    env("SENDER_EMAIL", configFile.SMTP.Sender),
	}, nil
}

// splitOrigins parses a comma-separated ALLOWED_ORIGINS value.
func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
