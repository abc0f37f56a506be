// SPDX-License-Identifier: MIT
package hilbert

import (
	"math/rand"

	"github.com/dmaksimov/hilbertcluster/xerrors"
)

// Cell is the minimal read-only surface EstimateCoarseness needs from a
// point: per-dimension coordinate access. point.Point satisfies it.
type Cell interface {
	Dim() int
	At(i int) uint32
}

// exactPairThreshold: at or below this many points, EstimateCoarseness
// scans all C(n,2) pairs exactly rather than sampling (spec.md §4.4).
const exactPairThreshold = 32

// EstimateCoarseness estimates, for each b in [1,bits], the probability
// that two uniformly random points from pts share the same D-dimensional
// hypercubic cell of side 2^(bits-b). Returns C[0..bits] with C[0] == 1.
// For len(pts) <= 32 it is exact (all pairs); otherwise it samples
// sampleSize distinct random pairs without replacement (capped at the
// total number of distinct pairs available).
func EstimateCoarseness(pts []Cell, bits uint, sampleSize int, rng *rand.Rand) ([]float64, error) {
	c := make([]float64, bits+1)
	c[0] = 1
	n := len(pts)
	if n < 2 {
		for b := uint(1); b <= bits; b++ {
			c[b] = 1
		}
		return c, nil
	}

	var pairs [][2]int
	if n <= exactPairThreshold {
		pairs = allPairs(n)
	} else {
		var err error
		pairs, err = samplePairs(n, sampleSize, rng)
		if err != nil {
			return nil, err
		}
	}
	if len(pairs) == 0 {
		for b := uint(1); b <= bits; b++ {
			c[b] = 1
		}
		return c, nil
	}

	for b := uint(1); b <= bits; b++ {
		shift := bits - b
		same := 0
		for _, pr := range pairs {
			if sameCell(pts[pr[0]], pts[pr[1]], shift) {
				same++
			}
		}
		c[b] = float64(same) / float64(len(pairs))
	}
	return c, nil
}

func sameCell(a, b Cell, shift uint) bool {
	for i := 0; i < a.Dim(); i++ {
		if (a.At(i) >> shift) != (b.At(i) >> shift) {
			return false
		}
	}
	return true
}

func allPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// samplePairs draws up to size distinct (i,j) pairs, i<j, without
// replacement, from n items. If size <= 0 or exceeds the total distinct
// pair count, it is clamped.
func samplePairs(n, size int, rng *rand.Rand) ([][2]int, error) {
	if rng == nil {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "hilbert.EstimateCoarseness",
			"rng is required when sampling pairs", nil)
	}
	maxPairs := n * (n - 1) / 2
	if size <= 0 || size > maxPairs {
		size = maxPairs
	}
	seen := make(map[[2]int]struct{}, size)
	pairs := make([][2]int, 0, size)
	// Rejection sampling: for the sizes this estimator is used at (a small
	// fraction of maxPairs), collisions are rare and this terminates fast.
	for len(pairs) < size {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key)
	}
	return pairs, nil
}
