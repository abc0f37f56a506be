// SPDX-License-Identifier: MIT
package density

import "github.com/dmaksimov/hilbertcluster/point"

// pairKey is an order-independent cache key for two point ids.
type pairKey struct{ a, b point.ID }

func newPairKey(a, b point.ID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// DistanceMemo caches squared distances between points whose positions in
// a Hilbert-ordered sequence lie within Window of each other, but only
// when the distance is at most Radius: entries exceeding the radius are
// never recorded, bounding the cache to roughly O(N*Window) in the dense
// regions that actually matter for agglomeration (spec.md §4.8).
type DistanceMemo struct {
	radius float64
	window int
	cache  map[pairKey]float64
}

// NewDistanceMemo constructs an empty memo for the given radius cap and
// window size.
func NewDistanceMemo(radius float64, window int) *DistanceMemo {
	return &DistanceMemo{radius: radius, window: window, cache: make(map[pairKey]float64)}
}

// SquaredDistance returns the squared distance between the points at
// positions i and j in order, using pts for coordinate lookup. If i and j
// are within Window of each other, the result is served from (and, on a
// miss, recorded into) the cache whenever it is at most Radius; pairs
// further apart in the order are always computed directly and never
// cached, since the engine only ever queries within-window pairs in
// practice.
func (m *DistanceMemo) SquaredDistance(order []point.ID, pts map[point.ID]*point.Point, i, j int) (float64, error) {
	idA, idB := order[i], order[j]
	inWindow := abs(i-j) <= m.window

	if inWindow {
		key := newPairKey(idA, idB)
		if d, ok := m.cache[key]; ok {
			return d, nil
		}
		d, err := pts[idA].DistanceSquared(pts[idB])
		if err != nil {
			return 0, err
		}
		if d <= m.radius {
			m.cache[key] = d
		}
		return d, nil
	}

	return pts[idA].DistanceSquared(pts[idB])
}

// Len returns the number of cached entries, mostly useful for tests
// confirming the cap-by-radius behavior actually bounds cache growth.
func (m *DistanceMemo) Len() int { return len(m.cache) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
