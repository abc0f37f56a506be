// SPDX-License-Identifier: MIT
// Package xerrors defines the shared error taxonomy of the Hilbert-order
// clustering engine. point and hilbert return its errors, and so does
// optimize's dimensionality check.
//
// Error policy (unchanged from the rest of the engine):
//   - Every public operation validates its own arguments. Operations in
//     point and hilbert, and optimize's dimensionality check, return one of
//     the sentinels below wrapped in an *EngineError, so callers can both
//     errors.Is against the sentinel and switch on Kind. The other packages
//     (gapstat, classify, closest, density, optimize, refine, cluster)
//     return plain package-local sentinels that do not wrap these.
//   - Internal helpers trust their caller and never revalidate.
//   - No error is ever used for control flow; merge/refine failures are
//     silent by design (see refine) and observable only via the resulting
//     Classification.
package xerrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the categories spec.md §7 names.
type Kind int

const (
	// KindUnknown is the zero value; never returned by this package.
	KindUnknown Kind = iota
	// KindInvalidArgument: malformed permutation, negative quantile numerator,
	// coordinate exceeding 2^B-1 on append, and similar caller mistakes.
	KindInvalidArgument
	// KindEmptyInput: fewer than the minimum number of points/elements.
	KindEmptyInput
	// KindDimensionMismatch: permutation length vs. dimensionality, or an
	// attempt to mix points of different D.
	KindDimensionMismatch
	// KindNumericOverflow: B*D exceeds the implementation's working width.
	KindNumericOverflow
	// KindNotFound: a query against a label/cluster with no members.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindEmptyInput:
		return "empty_input"
	case KindDimensionMismatch:
		return "dimension_mismatch"
	case KindNumericOverflow:
		return "numeric_overflow"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// EngineError is the concrete error type returned by the public operations
// of point and hilbert, and by optimize's dimensionality check.
// It carries an enumerated Kind, a human-readable message, and the offending
// value (if any), per spec.md §7 "User-visible behavior".
type EngineError struct {
	Kind    Kind
	Op      string // the public operation that rejected the input, e.g. "hilbert.Index"
	Message string
	Value   interface{} // offending value, where applicable; may be nil
	err     error       // sentinel this wraps, for errors.Is/errors.Unwrap
}

func (e *EngineError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (value=%v)", e.Op, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes the wrapped sentinel so errors.Is(err, ErrDimensionMismatch)
// works through an *EngineError.
func (e *EngineError) Unwrap() error { return e.err }

// Sentinel errors. Errors built by New wrap the sentinel of their Kind, so
// a single errors.Is check works regardless of which of point, hilbert or
// optimize produced the error.
var (
	ErrInvalidArgument   = errors.New("xerrors: invalid argument")
	ErrEmptyInput        = errors.New("xerrors: empty input")
	ErrDimensionMismatch = errors.New("xerrors: dimension mismatch")
	ErrNumericOverflow   = errors.New("xerrors: numeric overflow")
	ErrNotFound          = errors.New("xerrors: not found")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindEmptyInput:
		return ErrEmptyInput
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindNumericOverflow:
		return ErrNumericOverflow
	case KindNotFound:
		return ErrNotFound
	default:
		return errors.New("xerrors: unknown")
	}
}

// New builds an *EngineError of the given Kind, tagged with the operation
// name and a human-readable message. Value may be nil.
func New(k Kind, op, message string, value interface{}) *EngineError {
	return &EngineError{
		Kind:    k,
		Op:      op,
		Message: message,
		Value:   value,
		err:     sentinelFor(k),
	}
}

// Wrap adapts an arbitrary lower-level error into KindInvalidArgument,
// preserving it via %w so errors.Is/errors.As still reach the inner cause.
func Wrap(op, message string, cause error) *EngineError {
	e := New(KindInvalidArgument, op, message, nil)
	e.err = fmt.Errorf("%w: %v", ErrInvalidArgument, cause)
	return e
}
