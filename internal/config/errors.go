package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrInvalidRateLimit = errors.New("rate limit and window must be positive")
)
