package chembl

import "errors"

// Sentinel kinds for database errors.
var (
	ErrUpstreamStatus = errors.New("unexpected database status")
)
