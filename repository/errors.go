package repository

import "errors"

var (
	// ErrValidation marks a create call rejected for missing required data.
	// Recoverable; no partial write occurs.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup for an unknown id. A normal outcome, not an
	// exceptional one: stale share links are expected in operation.
	ErrNotFound = errors.New("not found")
)
