// SPDX-License-Identifier: MIT
package hilbert

import "github.com/dmaksimov/hilbertcluster/xerrors"

// maxAxisBits bounds the per-dimension coordinate width this implementation
// supports: each axis is carried in a uint64 during the Skilling transform,
// so bits > 64 cannot be represented and is rejected as numeric overflow
// (spec.md §7 KindNumericOverflow: "Hilbert encode/decode asked for B*D
// exceeding the implementation's working-integer width").
const maxAxisBits = 64

var (
	// ErrEmptyVector: Index/Coords called with zero dimensions.
	ErrEmptyVector = xerrors.ErrInvalidArgument
	// ErrCoordinateOutOfRange: a coordinate does not fit in `bits` bits.
	ErrCoordinateOutOfRange = xerrors.ErrInvalidArgument
	// ErrAxisWidthOverflow: bits exceeds maxAxisBits.
	ErrAxisWidthOverflow = xerrors.ErrNumericOverflow
)
