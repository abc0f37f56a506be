// SPDX-License-Identifier: MIT
// Package point: sentinel error set.
//
// All constructors in this package validate their arguments and return one
// of the sentinels below wrapped in an *xerrors.EngineError. Internal
// helpers (bitsFor, rngutilDerive, ...) trust their caller and never
// revalidate.
package point

import "github.com/dmaksimov/hilbertcluster/xerrors"

// ErrCoordinateOutOfRange is returned when a coordinate passed to New
// exceeds 2^B-1 for the bit width the caller has committed to.
var ErrCoordinateOutOfRange = xerrors.ErrInvalidArgument

// ErrEmptyVector is returned when New is called with a zero-length
// coordinate slice.
var ErrEmptyVector = xerrors.ErrInvalidArgument

// ErrDimensionMismatch is returned when operations mix points of different
// dimensionality (e.g. DistanceSquared, Balancer.ApplyTo).
var ErrDimensionMismatch = xerrors.ErrDimensionMismatch

// ErrEmptySet is returned by Centroid and Balancer construction when given
// zero points.
var ErrEmptySet = xerrors.ErrEmptyInput

// ErrBadPermutation is returned when a Permutation fails validation: wrong
// length, an index outside [0,D), or a repeated index.
var ErrBadPermutation = xerrors.ErrInvalidArgument
