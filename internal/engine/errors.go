package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrEmptyDocument indicates the engine was seeded with no lines.
	ErrEmptyDocument = errors.New("document must have at least one line")
)
