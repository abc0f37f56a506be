package cluster

import "errors"

// Sentinel errors specific to the facade layer (wrapping/validation failures
// that are not already covered by a component package's own sentinels).
var (
	// ErrEmptyPoints indicates an empty point set was supplied to a
	// facade operation that requires at least one point.
	ErrEmptyPoints = errors.New("cluster: point set must be non-empty")

	// ErrMissingOrdering indicates an OrderedResult with no ordering was
	// passed to Classify.
	ErrMissingOrdering = errors.New("cluster: OrderedResult has no ordering")
)
