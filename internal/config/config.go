package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr             = ":8080"
	defaultJWTAccessTTL         = "24h"
	defaultJWTSecret            = "change-me-jwt-secret"
	defaultAdminEmail           = "admin@impactnet.local"
	defaultAdminPassword        = "change-me-admin-password"
	defaultNotificationMaxAge = "720h"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	DatabaseURL   string
	JWTSecret     string
	JWTAccessTTL  time.Duration
	AdminEmail    string
	AdminPassword string

	// Read notifications older than this are eligible for cleanup.
	NotificationMaxAge time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", defaultAdminEmail)))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.NotificationMaxAge, err = parseDurationEnv("NOTIFICATION_MAX_AGE", defaultNotificationMaxAge)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.NotificationMaxAge <= 0 {
		return fmt.Errorf("NOTIFICATION_MAX_AGE must be > 0")
	}
	if cfg.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminPassword, defaultAdminPassword) {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
