package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client configuration, resolved from the environment
// with an optional .env file. Flags may override individual fields.
type Config struct {
	// APIBaseURL is the practice service endpoint.
	APIBaseURL string

	// UserID identifies the learner on the service.
	UserID string

	// Grade is the default practice track ("junior" or "middle").
	Grade string

	// DBPath is the local attempt log location.
	DBPath string

	// RequestTimeout bounds a single service request.
	RequestTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the
// process environment. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:     getenv("PRACTIK_API_URL", "http://localhost:8080"),
		UserID:         os.Getenv("PRACTIK_USER"),
		Grade:          getenv("PRACTIK_GRADE", "junior"),
		RequestTimeout: 15 * time.Second,
	}

	dbPath := os.Getenv("PRACTIK_DB")
	if dbPath == "" {
		p, err := defaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	}
	cfg.DBPath = dbPath

	if d := os.Getenv("PRACTIK_TIMEOUT"); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return Config{}, fmt.Errorf("parse PRACTIK_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = parsed
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
