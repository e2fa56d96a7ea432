// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// FMPAPIKey authenticates calls to the financial-data provider.
	// When empty, the live financial and symbol-search paths are disabled.
	FMPAPIKey string `koanf:"fmp_api_key"`

	// MockMode forces synthetic responses for clinical trials and molecules.
	MockMode bool `koanf:"mock_mode"`

	// RateLimit caps requests per client within the sliding window.
	RateLimit int `koanf:"rate_limit"`

	// RateLimitWindowSeconds sets the sliding-window length.
	RateLimitWindowSeconds int `koanf:"rate_limit_window_seconds"`

	// RateLimitMaxClients bounds the number of tracked client identifiers.
	RateLimitMaxClients int `koanf:"rate_limit_max_clients"`

	// FrontendOrigin is the origin allowed by the CORS middleware.
	FrontendOrigin string `koanf:"frontend_origin"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":5000",
		FMPAPIKey:              "",
		MockMode:               true,
		RateLimit:              100,
		RateLimitWindowSeconds: 60,
		RateLimitMaxClients:    10_000,
		FrontendOrigin:         "http://localhost:3001",
	}
}
