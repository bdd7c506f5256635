package main

import (
	"os"
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/pkg/radial"
)

// Config holds everything read from the environment (.env is autoloaded).
type Config struct {
	Port          string
	DBPath        string
	SMTP          SMTPConfig
	AdminUsername string
	AdminPassword string
	NavSessionTTL time.Duration
	Metrics       bool
	Radial        radial.Config
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

func loadConfig() Config {
	cfg := Config{
		Port:   getenv("PORT", "8080"),
		DBPath: getenv("DB_PATH", "portfolio.db"),
		SMTP: SMTPConfig{
			Host:    getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:    getenv("SMTP_PORT", "587"),
			User:    os.Getenv("SMTP_USER"),
			Pass:    os.Getenv("SMTP_PASS"),
			ToEmail: getenv("TO_EMAIL", "hello@example.com"),
		},
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		NavSessionTTL: 30 * time.Minute,
		Metrics:       true,
		Radial:        radial.DefaultConfig(),
	}

	if v, err := time.ParseDuration(os.Getenv("NAV_SESSION_TTL")); err == nil && v > 0 {
		cfg.NavSessionTTL = v
	}
	if v, err := strconv.ParseBool(os.Getenv("METRICS_ENABLED")); err == nil {
		cfg.Metrics = v
	}
	if v := os.Getenv("NAV_ACCENT"); v != "" {
		cfg.Radial.AccentColor = v
	}
	if v := os.Getenv("NAV_CORNER"); v != "" {
		cfg.Radial.Corner = radial.ParseCorner(v)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
