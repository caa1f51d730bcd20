package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration read from environment variables.
// Credentials are always injected this way; nothing is compiled in.
type Config struct {
	Port        string
	APIBaseURL  string
	APIUsername string
	APIPassword string
	APITimeout  time.Duration
}

// Load reads the configuration from environment variables.
// API_BASE_URL, API_USERNAME and API_PASSWORD are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		APIUsername: os.Getenv("API_USERNAME"),
		APIPassword: os.Getenv("API_PASSWORD"),
		APITimeout:  5 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// Remove leading colon if present (some platforms export PORT with it)
	if cfg.Port[0] == ':' {
		cfg.Port = cfg.Port[1:]
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is not set")
	}
	if cfg.APIUsername == "" || cfg.APIPassword == "" {
		return nil, fmt.Errorf("API_USERNAME and API_PASSWORD environment variables must be set")
	}

	if v := os.Getenv("API_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS: %q", v)
		}
		cfg.APITimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
