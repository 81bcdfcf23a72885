package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every externally-supplied setting the API needs.
// Nothing in the codebase reads os.Getenv directly except this package,
// so there is exactly one place where a secret can come from.
type Config struct {
	Port  string
	DBDSN string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string

	UploadDir string

	// AppEnv gates debug-only behaviour (e.g. echoing the OTP in the
	// send-otp response). Anything other than "development" is treated
	// as production.
	AppEnv string
}

// Load reads the configuration from environment variables.
// Secrets have NO hardcoded fallbacks: a missing secret is a startup error,
// not a silently insecure default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "4006"),
		DBDSN:              os.Getenv("DB_DSN"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
		RazorpayKeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		UploadDir:          getEnv("UPLOAD_DIR", "./productImages"),
		AppEnv:             getEnv("APP_ENV", "production"),
	}

	// Fail fast on anything we cannot run without.
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN environment variable is not set")
	}
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is not set")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET environment variable is not set")
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET environment variables are not set")
	}

	return cfg, nil
}

// IsDevelopment reports whether debug-only responses are allowed.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
