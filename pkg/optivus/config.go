package optivus

import "time"

// Config holds client configuration for the Optivus backend.
type Config struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// DefaultConfig returns a config pointed at the given backend URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
	}
}
