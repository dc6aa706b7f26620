package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string
}

// Enabled reports whether an SMTP transport is configured. Without it the
// mailer degrades to logging outbound messages only.
func (smtp SMTPConfig) Enabled() bool {
	return smtp.Host != ""
}

type Config struct {
	DatabaseURL   string
	StoreDriver   string
	SessionSecret string
	Port          string
	AppEnv        string
	EnableHTTPS   bool
	ClientURL     string
	UploadDir     string
	SMTP          SMTPConfig
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Load reads configuration from the environment, honouring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreDriverSQLite),
		SessionSecret: getEnv("SESSION_SECRET", "change_me_in_production"),
		Port:          getEnv("PORT", "5000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		EnableHTTPS:   boolEnv("ENABLE_HTTPS"),
		ClientURL:     strings.TrimRight(getEnv("CLIENT_URL", "http://localhost:5000"), "/"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		SMTP: SMTPConfig{
			Host:   os.Getenv("SMTP_HOST"),
			Port:   intEnv("SMTP_PORT", 587),
			Secure: boolEnv("SMTP_SECURE"),
			User:   os.Getenv("SMTP_USER"),
			Pass:   os.Getenv("SMTP_PASS"),
			From:   getEnv("SMTP_FROM", "no-reply@symposia.local"),
		},
	}

	if cfg.StoreDriver != StoreDriverMemory && cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
