package config

import (
	"os"
	"time"
)

type Config struct {
	Port                string
	AllowedOrigins      string
	JWTSecret           string
	TokenTTL            time.Duration
	ResponderURL        string
	ResponderTimeout    time.Duration
	SessionStoreURL     string
	SessionStoreTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Port:                envOr("PORT", "5000"),
		AllowedOrigins:      envOr("ALLOWED_ORIGINS", "http://localhost:5173"),
		JWTSecret:           envOr("JWT_SECRET", "your_secret_key"),
		TokenTTL:            24 * time.Hour,
		ResponderURL:        envOr("RESPONDER_URL", "http://localhost:5005/webhooks/rest/webhook"),
		ResponderTimeout:    30 * time.Second,
		SessionStoreURL:     os.Getenv("SESSION_STORE_URL"),
		SessionStoreTimeout: 15 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
