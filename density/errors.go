package density

import "errors"

// Sentinel errors for density-engine construction and queries.
var (
	// ErrEmptyOrder indicates an empty ordered point sequence.
	ErrEmptyOrder = errors.New("density: ordered sequence must be non-empty")

	// ErrMissingPoint indicates an id in the order had no matching point.
	ErrMissingPoint = errors.New("density: point id missing from lookup")

	// ErrBadParams indicates a non-positive window or neighbor count.
	ErrBadParams = errors.New("density: window and neighbor count must be positive")
)
