package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/facilityos/equiptrack/internal/constants"
)

// Config holds client configuration resolved from the environment
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	Debug       bool
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  getEnv("EQUIPTRACK_API_URL", constants.DefaultAPIBaseURL),
		HTTPTimeout: getDuration("EQUIPTRACK_HTTP_TIMEOUT", time.Duration(constants.DefaultHTTPTimeoutSeconds)*time.Second),
		Debug:       getBool("EQUIPTRACK_DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the resolved configuration is usable
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("EQUIPTRACK_API_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("EQUIPTRACK_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
