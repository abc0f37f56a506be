// SPDX-License-Identifier: MIT
package density

import (
	"sort"

	"github.com/dmaksimov/hilbertcluster/point"
	"gonum.org/v1/gonum/stat"
)

// Engine computes density statistics over a fixed Hilbert-ordered sequence
// of points, using a window of Window positions on either side of each
// point and a per-point neighbor rank of NeighborCount.
type Engine struct {
	order         []point.ID
	pts           map[point.ID]*point.Point
	window        int
	neighborCount int

	radius      float64
	radiusKnown bool
	memo        *DistanceMemo
}

// NewEngine constructs an Engine over order (the Hilbert-sorted point ids)
// and pts (a lookup from id to Point). window and neighborCount must be
// positive.
func NewEngine(order []point.ID, pts map[point.ID]*point.Point, window, neighborCount int) (*Engine, error) {
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}
	if window <= 0 || neighborCount <= 0 {
		return nil, ErrBadParams
	}
	for _, id := range order {
		if _, ok := pts[id]; !ok {
			return nil, ErrMissingPoint
		}
	}
	return &Engine{order: order, pts: pts, window: window, neighborCount: neighborCount}, nil
}

// windowBounds returns the [lo,hi) index range of i's window, clamped to
// the sequence boundaries.
func (e *Engine) windowBounds(i int) (lo, hi int) {
	lo = i - e.window
	if lo < 0 {
		lo = 0
	}
	hi = i + e.window + 1
	if hi > len(e.order) {
		hi = len(e.order)
	}
	return lo, hi
}

// distance returns the squared distance between the points at positions i
// and j in order, routing through the memo once Radius has established a
// cache bound; before that, every call computes directly.
func (e *Engine) distance(i, j int) (float64, error) {
	if e.memo != nil {
		return e.memo.SquaredDistance(e.order, e.pts, i, j)
	}
	return e.pts[e.order[i]].DistanceSquared(e.pts[e.order[j]])
}

// kthSmallestInWindow returns the k-th smallest squared distance from
// point at index i to the other points in i's window (k = NeighborCount,
// clamped to the number of other points available).
func (e *Engine) kthSmallestInWindow(i int) (float64, error) {
	lo, hi := e.windowBounds(i)

	dists := make([]float64, 0, hi-lo-1)
	for j := lo; j < hi; j++ {
		if j == i {
			continue
		}
		d, err := e.distance(i, j)
		if err != nil {
			return 0, err
		}
		dists = append(dists, d)
	}
	if len(dists) == 0 {
		return 0, nil
	}
	sort.Float64s(dists)
	k := e.neighborCount
	if k > len(dists) {
		k = len(dists)
	}
	return dists[k-1], nil
}

// Radius computes the neighborhood radius R: the average, over every
// position in the sequence, of its k-th-smallest in-window squared
// distance (spec.md §4.8). The result is cached after the first call.
func (e *Engine) Radius() (float64, error) {
	if e.radiusKnown {
		return e.radius, nil
	}
	dists := make([]float64, len(e.order))
	for i := range e.order {
		d, err := e.kthSmallestInWindow(i)
		if err != nil {
			return 0, err
		}
		dists[i] = d
	}
	e.radius = stat.Mean(dists, nil)
	e.radiusKnown = true
	e.memo = NewDistanceMemo(e.radius, e.window)
	return e.radius, nil
}

// EstimateNeighbors counts the points in i's window whose squared distance
// to point[i] is at most the neighborhood radius R, excluding i itself.
func (e *Engine) EstimateNeighbors(i int) (int, error) {
	r, err := e.Radius()
	if err != nil {
		return 0, err
	}
	lo, hi := e.windowBounds(i)
	count := 0
	for j := lo; j < hi; j++ {
		if j == i {
			continue
		}
		d, err := e.distance(i, j)
		if err != nil {
			return 0, err
		}
		if d <= r {
			count++
		}
	}
	return count, nil
}

// NeighborCounts returns EstimateNeighbors for every position in order.
func (e *Engine) NeighborCounts() ([]int, error) {
	counts := make([]int, len(e.order))
	for i := range e.order {
		c, err := e.EstimateNeighbors(i)
		if err != nil {
			return nil, err
		}
		counts[i] = c
	}
	return counts, nil
}

// DensityRanks ranks every position by descending neighbor count: the
// position(s) with the highest count receive rank 0, and ties receive the
// same rank (standard competition ranking: a tie of size m at rank r is
// followed by rank r+m, not r+1).
func (e *Engine) DensityRanks() ([]int, error) {
	counts, err := e.NeighborCounts()
	if err != nil {
		return nil, err
	}
	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })

	ranks := make([]int, len(counts))
	i := 0
	for i < len(order) {
		j := i
		for j < len(order) && counts[order[j]] == counts[order[i]] {
			j++
		}
		for k := i; k < j; k++ {
			ranks[order[k]] = i
		}
		i = j
	}
	return ranks, nil
}

// SmoothedRanks applies the neighborhood-rank smoother: each position's
// rank is pulled toward the minimum rank within its window via the
// weighted average (weight*min + self) / (weight+1), so seed points in
// dense regions attract their neighbors during agglomeration (spec.md
// §4.8). weight lets callers tune how strongly a position favors its
// window's densest neighbor over its own rank.
func (e *Engine) SmoothedRanks(weight float64) ([]float64, error) {
	ranks, err := e.DensityRanks()
	if err != nil {
		return nil, err
	}
	w := weight
	smoothed := make([]float64, len(ranks))
	for i := range ranks {
		lo, hi := e.windowBounds(i)
		min := ranks[i]
		for j := lo; j < hi; j++ {
			if ranks[j] < min {
				min = ranks[j]
			}
		}
		smoothed[i] = (w*float64(min) + float64(ranks[i])) / (w + 1)
	}
	return smoothed, nil
}
