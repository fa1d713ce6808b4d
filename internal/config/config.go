// Package config holds portal configuration, loaded from an optional YAML
// file with OPTIVUS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBackendURL is the production Optivus backend.
const DefaultBackendURL = "https://optivlivebackend.onrender.com"

// Config holds configuration for the portal server and CLI.
type Config struct {
	Addr          string        `yaml:"addr"`           // listen address (default ":8080")
	BackendURL    string        `yaml:"backend_url"`    // Optivus backend base URL
	DBPath        string        `yaml:"db_path"`        // SQLite session DB (":memory:" for tests)
	LogLevel      string        `yaml:"log_level"`      // debug, info, warn, error
	LogFormat     string        `yaml:"log_format"`     // text, json
	SecureCookies bool          `yaml:"secure_cookies"` // set Secure on session cookies (HTTPS)
	SessionTTL    time.Duration `yaml:"session_ttl"`    // web session lifetime
	HTTPTimeout   time.Duration `yaml:"http_timeout"`   // backend request timeout

	// LoginRatePerMin bounds login attempts per client IP; 0 disables limiting.
	LoginRatePerMin int `yaml:"login_rate_per_min"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Addr:            ":8080",
		BackendURL:      DefaultBackendURL,
		LogLevel:        "info",
		LogFormat:       "text",
		SessionTTL:      24 * time.Hour,
		HTTPTimeout:     30 * time.Second,
		LoginRatePerMin: 10,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty the file must exist), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPTIVUS_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("OPTIVUS_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("OPTIVUS_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("OPTIVUS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("OPTIVUS_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("OPTIVUS_SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SecureCookies = b
		}
	}
	if v := os.Getenv("OPTIVUS_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SessionTTL = d
		}
	}
	if v := os.Getenv("OPTIVUS_LOGIN_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.LoginRatePerMin = n
		}
	}
}
