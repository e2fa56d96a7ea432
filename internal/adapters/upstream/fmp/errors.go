package fmp

import "errors"

// Sentinel kinds for provider errors.
var (
	ErrNoAPIKey       = errors.New("financial data provider API key not configured")
	ErrNotFound       = errors.New("company not found")
	ErrUpstreamStatus = errors.New("unexpected provider status")
)
