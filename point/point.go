// SPDX-License-Identifier: MIT
package point

import (
	"fmt"
	"math"

	"github.com/dmaksimov/hilbertcluster/xerrors"
	"gonum.org/v1/gonum/floats"
)

// ID uniquely and stably identifies a Point for the lifetime of a run. Two
// points with identical coordinates but different IDs are distinct; IDs are
// assigned at construction and never change. IDs are dense enough to be
// used as indices into an ID-indexed array owned by the orchestrator
// (package cluster), per the "no cycles between a point and its index home"
// rule.
type ID uint64

// Point is an immutable, non-negative integer vector of fixed
// dimensionality D, plus a stable ID and two cached helpers: the maximum
// coordinate value (maxCoord) and the squared vector magnitude (sqMag).
// Coordinates are expected to lie in [0, 2^B) for whatever B the caller has
// committed to (enforced by New only when a positive maxValue is supplied).
type Point struct {
	id       ID
	coords   []uint32
	maxCoord uint32
	sqMag    float64
}

// New constructs a Point from id and coords. If maxValue > 0, every
// coordinate is validated to lie in [0, maxValue]; a violation returns
// ErrCoordinateOutOfRange. Pass maxValue <= 0 to skip that check (e.g. when
// the bit width has not yet been inferred). coords is copied; the caller's
// slice may be reused or mutated afterward.
func New(id ID, coords []uint32, maxValue uint32) (*Point, error) {
	if len(coords) == 0 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "point.New", "coordinate vector is empty", nil)
	}
	owned := make([]uint32, len(coords))
	copy(owned, coords)

	var maxCoord uint32
	var sqMag float64
	for _, c := range owned {
		if maxValue > 0 && c > maxValue {
			return nil, xerrors.New(xerrors.KindInvalidArgument, "point.New",
				fmt.Sprintf("coordinate %d exceeds maximum %d", c, maxValue), c)
		}
		if c > maxCoord {
			maxCoord = c
		}
		sqMag += float64(c) * float64(c)
	}

	return &Point{id: id, coords: owned, maxCoord: maxCoord, sqMag: sqMag}, nil
}

// ID returns the point's stable identifier.
func (p *Point) ID() ID { return p.id }

// Dim returns the point's dimensionality D.
func (p *Point) Dim() int { return len(p.coords) }

// Coords returns a copy of the point's coordinates; callers must not mutate
// the Point through the result (Point is immutable by contract).
func (p *Point) Coords() []uint32 {
	out := make([]uint32, len(p.coords))
	copy(out, p.coords)
	return out
}

// At returns the i-th coordinate without allocating.
func (p *Point) At(i int) uint32 { return p.coords[i] }

// MaxCoord returns the cached maximum coordinate value across dimensions.
func (p *Point) MaxCoord() uint32 { return p.maxCoord }

// SquaredMagnitude returns the cached sum of squared coordinates.
func (p *Point) SquaredMagnitude() float64 { return p.sqMag }

// DistanceSquared returns the squared Euclidean distance between p and q.
// Both must share the same dimensionality or ErrDimensionMismatch is
// returned.
func (p *Point) DistanceSquared(q *Point) (float64, error) {
	if len(p.coords) != len(q.coords) {
		return 0, xerrors.New(xerrors.KindDimensionMismatch, "point.DistanceSquared",
			"points have different dimensionality", [2]int{len(p.coords), len(q.coords)})
	}
	var sum float64
	for i := range p.coords {
		d := float64(p.coords[i]) - float64(q.coords[i])
		sum += d * d
	}
	return sum, nil
}

// WithinSquaredDistance reports whether DistanceSquared(p, q) <= threshold,
// short-circuiting via a triangulation bound on the cached magnitudes
// whenever that bound alone proves the answer (spec.md §4.1's
// "compare-squared-distance-to-threshold"). ok is false only on a
// dimension mismatch.
//
// The bound used is the reverse triangle inequality on the vector norms:
// |  |p| - |q|  |^2 is a lower bound on the true squared distance whenever
// both vectors are compared against the origin along the same axes, which
// holds here because all coordinates are non-negative. If that lower bound
// already exceeds threshold, the exact distance must too, and we skip the
// full per-dimension scan.
func (p *Point) WithinSquaredDistance(q *Point, threshold float64) (within bool, ok bool) {
	if len(p.coords) != len(q.coords) {
		return false, false
	}
	pn := math.Sqrt(p.sqMag)
	qn := math.Sqrt(q.sqMag)
	lower := pn - qn
	lower *= lower
	if lower > threshold {
		return false, true
	}
	d, err := p.DistanceSquared(q)
	if err != nil {
		return false, false
	}
	return d <= threshold, true
}

// Centroid returns the rounded integer mean, per coordinate, of pts. All
// points must share the same dimensionality. The result carries id as its
// identifier; callers typically use a sentinel ID reserved for synthetic
// centroids.
func Centroid(id ID, pts []*Point) (*Point, error) {
	if len(pts) == 0 {
		return nil, xerrors.New(xerrors.KindEmptyInput, "point.Centroid", "no points supplied", nil)
	}
	d := pts[0].Dim()
	sums := make([]float64, d)
	for _, pt := range pts {
		if pt.Dim() != d {
			return nil, xerrors.New(xerrors.KindDimensionMismatch, "point.Centroid",
				"points have different dimensionality", nil)
		}
		for i := 0; i < d; i++ {
			sums[i] += float64(pt.coords[i])
		}
	}
	n := float64(len(pts))
	floats.Scale(1/n, sums)
	coords := make([]uint32, d)
	for i, s := range sums {
		coords[i] = uint32(math.Round(s))
	}
	return New(id, coords, 0)
}
