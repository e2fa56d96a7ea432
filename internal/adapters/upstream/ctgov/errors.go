package ctgov

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrUpstreamStatus = errors.New("unexpected registry status")
)
