package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	// SecretKey signs the browser cookie that names the stored session record.
	SecretKey  string
	CookieName string
	// StoragePath is the SQLite file backing the persistent key-value store.
	StoragePath string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type CacheConfig struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

type Config struct {
	ServerPort string
	Backend    BackendConfig
	Session    SessionConfig
	Google     GoogleConfig
	Stripe     StripeConfig
	Cache      CacheConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8090"),
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("API_BASE_URL", "http://localhost:5000"),
			Timeout: getDurationOrDefault("API_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			SecretKey:   os.Getenv("SESSION_SECRET"),
			CookieName:  getEnvOrDefault("SESSION_COOKIE", "etuition_session"),
			StoragePath: getEnvOrDefault("STORAGE_PATH", "etuition.db"),
		},
		Google: GoogleConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  getEnvOrDefault("GOOGLE_REDIRECT_URL", "http://localhost:8090/auth/google/callback"),
		},
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		},
		Cache: CacheConfig{
			DefaultTTL:      getDurationOrDefault("CACHE_TTL", 5*time.Minute),
			CleanupInterval: getDurationOrDefault("CACHE_CLEANUP_INTERVAL", 10*time.Minute),
		},
	}

	if cfg.Session.SecretKey == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
