package optimize

import "errors"

// Sentinel errors for permutation-search input validation.
var (
	// ErrEmptyInput indicates fewer than the minimum number of points were
	// supplied to search over (spec.md §7: "fewer than 10 points to the
	// optimizer").
	ErrEmptyInput = errors.New("optimize: at least 10 points are required")

	// ErrBadParams indicates an invalid combination of search parameters.
	ErrBadParams = errors.New("optimize: invalid parameter combination")
)
