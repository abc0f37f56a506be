package closest

import "errors"

// Sentinel errors for closest-cluster operations.
var (
	// ErrUnknownLabel indicates an operation referenced a label absent
	// from the supplied Classification.
	ErrUnknownLabel = errors.New("closest: label has no members")

	// ErrMissingPoint indicates a member id had no corresponding entry in
	// the supplied point lookup.
	ErrMissingPoint = errors.New("closest: point id missing from lookup")

	// ErrBadParams indicates an invalid combination of search parameters.
	ErrBadParams = errors.New("closest: invalid parameter combination")
)
