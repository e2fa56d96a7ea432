package repository

import "errors"

// Sentinel kinds for company store errors.
var (
	ErrNotFound        = errors.New("company not found")
	ErrDuplicateTicker = errors.New("company with this ticker already exists")
)
