package classify

import "errors"

// Sentinel errors for Classification operations.
var (
	// ErrUnknownPoint indicates an operation referenced a point id with no
	// current label.
	ErrUnknownPoint = errors.New("classify: point has no label")

	// ErrUnknownLabel indicates an operation referenced a label with no
	// current members.
	ErrUnknownLabel = errors.New("classify: label has no members")

	// ErrDimensionMismatch indicates two classifications were compared
	// over different point sets.
	ErrDimensionMismatch = errors.New("classify: classifications cover different point sets")

	// ErrBadAlpha indicates an out-of-range B-Cubed weighting factor.
	ErrBadAlpha = errors.New("classify: alpha must be in [0,1]")
)
