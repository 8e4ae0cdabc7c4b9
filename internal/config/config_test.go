package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EQUIPTRACK_API_URL", "")
	t.Setenv("EQUIPTRACK_HTTP_TIMEOUT", "")
	t.Setenv("EQUIPTRACK_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("unexpected default API URL: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EQUIPTRACK_API_URL", "https://equipment.example.com")
	t.Setenv("EQUIPTRACK_HTTP_TIMEOUT", "30s")
	t.Setenv("EQUIPTRACK_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://equipment.example.com" {
		t.Errorf("unexpected API URL: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.HTTPTimeout)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
}

func TestValidateRejectsRelativeURL(t *testing.T) {
	cfg := &Config{APIBaseURL: "localhost:8080", HTTPTimeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for URL without scheme")
	}

	cfg = &Config{APIBaseURL: "http://localhost:8080", HTTPTimeout: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive timeout")
	}
}

func TestBadEnvValuesFallBack(t *testing.T) {
	t.Setenv("EQUIPTRACK_API_URL", "")
	t.Setenv("EQUIPTRACK_HTTP_TIMEOUT", "fast")
	t.Setenv("EQUIPTRACK_DEBUG", "yessir")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Error("expected fallback debug=false")
	}
}
