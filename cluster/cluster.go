// SPDX-License-Identifier: MIT
package cluster

import (
	"math/big"
	"math/rand"

	"github.com/dmaksimov/hilbertcluster/classify"
	"github.com/dmaksimov/hilbertcluster/gapstat"
	"github.com/dmaksimov/hilbertcluster/hilbert"
	"github.com/dmaksimov/hilbertcluster/optimize"
	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/dmaksimov/hilbertcluster/refine"
	"github.com/dmaksimov/hilbertcluster/rngutil"
)

// OptimizeOrder searches for the dimension permutation whose Hilbert
// ordering produces the cleanest cluster-gap signal (spec.md §6 operation
// 1; component C9). It operates directly on points' own coordinates:
// balancing, when wanted, is an explicit pre-processing step the caller
// applies (see SortByHilbert's balance flag) rather than something this
// search redoes per candidate permutation, since per-dimension balance
// statistics would otherwise need recomputing for every one of
// potentially thousands of scrambled permutations.
func OptimizeOrder(points []*point.Point, params SearchParams) (OrderedResult, error) {
	if len(points) == 0 {
		return OrderedResult{}, ErrEmptyPoints
	}
	return optimize.Optimize(points, params)
}

// ClusteringTendency reports whether ordered shows genuine cluster
// structure or none at all (spec.md §8 S3; e.g. 10,000 uniformly random
// points settle on either a single cluster or a cluster count equal to
// their own outlier count, and this then returns
// gapstat.TendencyUnclustered).
func ClusteringTendency(ordered OrderedResult) string {
	return gapstat.ClusteringTendency(gapstat.Result{
		ClusterCountExcludingOutliers: ordered.EstimatedClusterCount,
		OutlierCount:                  ordered.OutlierCount,
	})
}

// Classify runs the density-based agglomeration pass (spec.md §6
// operation 2; component C10) over the ordering produced by OptimizeOrder,
// returning the resulting Classification.
func Classify(points []*point.Point, ordered OrderedResult, params RefinementParams) (*classify.Classification, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	if len(ordered.Ordering) == 0 {
		return nil, ErrMissingOrdering
	}
	lookup := make(map[point.ID]*point.Point, len(points))
	for _, p := range points {
		lookup[p.ID()] = p
	}
	return refine.Refine(ordered.Ordering, lookup, ordered.MergeSquaredDistance, params)
}

// HilbertIndex maps coords to its Hilbert index at the given bit width
// (spec.md §6 operation 3; component C2). Pure and side-effect free.
func HilbertIndex(coords []uint32, bits uint) (*big.Int, error) {
	return hilbert.Index(coords, bits)
}

// CoordsFromIndex is HilbertIndex's inverse (spec.md §6 operation 3):
// recovers the dims-dimensional coordinate vector encoded in index at the
// given bit width.
func CoordsFromIndex(index *big.Int, dims int, bits uint) ([]uint32, error) {
	return hilbert.Coords(index, dims, bits)
}

// SortByHilbert orders points by Hilbert index at the given bit width
// (spec.md §6 operation 4; component C3). perm, if non-nil, reorders
// dimensions before encoding. When balance is true, a Balancer is fit over
// perm's own output (the same coordinate space hilbert.Sort applies the
// balancer in, since its internal transform order is permute-then-balance)
// and applied to every point; when false, points are sorted on raw
// coordinates.
func SortByHilbert(points []*point.Point, bits uint, perm point.Permutation, balance bool) ([]point.ID, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}

	var balancer *point.Balancer
	if balance {
		reference := points
		if perm != nil {
			permuted := make([]*point.Point, len(points))
			for i, p := range points {
				pp, err := perm.ApplyTo(p)
				if err != nil {
					return nil, err
				}
				permuted[i] = pp
			}
			reference = permuted
		}
		likes := make([]point.PointLike, len(reference))
		for i, p := range reference {
			likes[i] = p
		}
		var err error
		balancer, err = point.NewBalancer(likes, int(bits), rand.New(rand.NewSource(1)))
		if err != nil {
			return nil, err
		}
	}

	return hilbert.Sort(points, bits, perm, balancer, rngutil.New(1))
}

// CompareClassifications computes B-Cubed precision, recall, and the
// alpha-weighted combined score between a and b (spec.md §6 operation 5;
// alpha in [0,1]).
func CompareClassifications(a, b *classify.Classification, alpha float64) (classify.Comparison, error) {
	return classify.Compare(a, b, alpha)
}
