package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("expected default backend URL, got %q", cfg.BackendURL)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session TTL, got %v", cfg.SessionTTL)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	content := "addr: \":9000\"\nbackend_url: \"http://localhost:8000\"\nlog_level: debug\nsession_ttl: 1h\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %q", cfg.Addr)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("expected file backend URL, got %q", cfg.BackendURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h session TTL, got %v", cfg.SessionTTL)
	}
	// Untouched fields keep defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("expected default log format, got %q", cfg.LogFormat)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPTIVUS_ADDR", ":7777")
	t.Setenv("OPTIVUS_BACKEND_URL", "http://backend.test")
	t.Setenv("OPTIVUS_SECURE_COOKIES", "true")
	t.Setenv("OPTIVUS_SESSION_TTL", "30m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":7777" {
		t.Errorf("expected env addr, got %q", cfg.Addr)
	}
	if cfg.BackendURL != "http://backend.test" {
		t.Errorf("expected env backend URL, got %q", cfg.BackendURL)
	}
	if !cfg.SecureCookies {
		t.Error("expected secure cookies enabled")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m session TTL, got %v", cfg.SessionTTL)
	}
}
