package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrTrialsUnavailable   = errors.New("failed to fetch clinical trials")
	ErrMoleculeUnavailable = errors.New("failed to fetch molecule data")
)
