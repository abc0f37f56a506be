package refine

import "errors"

// Sentinel errors for the density-based refiner.
var (
	// ErrEmptyOrder indicates an empty ordered point sequence.
	ErrEmptyOrder = errors.New("refine: ordered sequence must be non-empty")

	// ErrLengthMismatch indicates the order and rank slices disagree in
	// length.
	ErrLengthMismatch = errors.New("refine: order and rank slices must have equal length")

	// ErrMissingPoint indicates an id in the order had no matching point.
	ErrMissingPoint = errors.New("refine: point id missing from lookup")

	// ErrBadParams indicates invalid Params: a non-positive
	// UnmergeableSize, WindowSize or NeighborCount, or a negative
	// NeighborhoodRankWeight.
	ErrBadParams = errors.New("refine: invalid refinement params")
)
