// SPDX-License-Identifier: MIT
package hilbert

import (
	"math"
	"math/big"
	"math/rand"
	"sort"

	"github.com/dmaksimov/hilbertcluster/point"
)

// smallDatasetThreshold: at or below this size, Sort falls back to the
// simpler single-pass variant (compute every full-precision index, then
// quicksort), per spec.md §4.3.
const smallDatasetThreshold = 64

// coarsenessSampleSize bounds how many pairs EstimateCoarseness samples
// when choosing the sorter's next recursion depth.
const coarsenessSampleSize = 256

// Sort produces a total, deterministic order of points' IDs by Hilbert
// index at bit width bits, without ever holding more than
// O(N/bucketCount) full-precision indices at once (spec.md §4.3). perm
// reorders dimensions before encoding; pass nil for the identity
// permutation. balancer, if non-nil, is applied (after perm) to every point
// before encoding; pass nil to sort on raw coordinates.
//
// Ties (points with equal transformed coordinates) are broken by ID so the
// result is a total order.
func Sort(points []*point.Point, bits uint, perm point.Permutation, balancer *point.Balancer, rng *rand.Rand) ([]point.ID, error) {
	if len(points) == 0 {
		return nil, nil
	}
	transformed, err := transformAll(points, perm, balancer)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if len(transformed) <= smallDatasetThreshold {
		return sortSmall(transformed, bits)
	}
	return sortRecursive(transformed, 1, bits, rng)
}

func transformAll(points []*point.Point, perm point.Permutation, balancer *point.Balancer) ([]*point.Point, error) {
	out := make([]*point.Point, len(points))
	for i, p := range points {
		cur := p
		if perm != nil {
			var err error
			cur, err = perm.ApplyTo(cur)
			if err != nil {
				return nil, err
			}
		}
		if balancer != nil {
			var err error
			cur, err = balancer.ApplyTo(cur)
			if err != nil {
				return nil, err
			}
		}
		out[i] = cur
	}
	return out, nil
}

// sortSmall is the "simpler single-pass variant" of spec.md §4.3: compute
// every point's full-precision index once, then sort.
func sortSmall(points []*point.Point, bits uint) ([]point.ID, error) {
	type entry struct {
		idx *big.Int
		id  point.ID
	}
	entries := make([]entry, len(points))
	for i, p := range points {
		idx, err := Index(p.Coords(), bits)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{idx: idx, id: p.ID()}
	}
	sort.Slice(entries, func(i, j int) bool {
		c := entries[i].idx.Cmp(entries[j].idx)
		if c != 0 {
			return c < 0
		}
		return entries[i].id < entries[j].id
	})
	ids := make([]point.ID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids, nil
}

type pivotEntry struct {
	idx *big.Int
	p   *point.Point
}

// sortRecursive implements the recursive bucket sort of spec.md §4.3: items
// are assumed to already agree on every bit coarser than `depth`; this call
// buckets them at `depth` bits/dim and recurses into any bucket with more
// than one member, choosing each recursion's bit depth via
// EstimateCoarseness (capped at capBits).
func sortRecursive(items []*point.Point, depth, capBits uint, rng *rand.Rand) ([]point.ID, error) {
	n := len(items)
	if n <= 1 {
		return idsOf(items), nil
	}
	if n <= smallDatasetThreshold {
		return sortSmall(items, capBits)
	}

	shuffled := make([]*point.Point, n)
	copy(shuffled, items)
	shufflePoints(shuffled, rng)

	pivotCount := int(math.Sqrt(float64(n)))
	if pivotCount < 1 {
		pivotCount = 1
	}
	pivots, err := pickPivots(shuffled, pivotCount, depth, capBits)
	if err != nil {
		return nil, err
	}
	sort.Slice(pivots, func(i, j int) bool { return pivots[i].idx.Cmp(pivots[j].idx) < 0 })

	buckets := make([][]*point.Point, len(pivots))
	for _, p := range shuffled {
		idx, err := indexAt(p, depth, capBits)
		if err != nil {
			return nil, err
		}
		b := bucketFor(pivots, idx)
		buckets[b] = append(buckets[b], p)
	}

	result := make([]point.ID, 0, n)
	for _, bucket := range buckets {
		switch {
		case len(bucket) <= 1:
			result = append(result, idsOf(bucket)...)
		case depth >= capBits:
			// Full precision already used: the bucket can still span several
			// indices between two pivots, so order it by full-precision index,
			// breaking ties between duplicate coordinates by ID.
			sub, err := sortSmall(bucket, capBits)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		default:
			nextDepth := chooseNextDepth(depth, capBits, bucket, rng)
			sub, err := sortRecursive(bucket, nextDepth, capBits, rng)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		}
	}
	return result, nil
}

// indexAt returns p's Hilbert index at depth bits/dim, computed from the top
// depth bits of each of p's capBits-bit coordinates.
func indexAt(p *point.Point, depth, capBits uint) (*big.Int, error) {
	coords := p.Coords()
	top := make([]uint32, len(coords))
	for i, c := range coords {
		top[i] = c >> (capBits - depth)
	}
	return Index(top, depth)
}

func idsOf(pts []*point.Point) []point.ID {
	ids := make([]point.ID, len(pts))
	for i, p := range pts {
		ids[i] = p.ID()
	}
	return ids
}

func shufflePoints(pts []*point.Point, rng *rand.Rand) {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// pickPivots selects up to count unique-coordinate-signature items from
// shuffled (already in randomized order) and computes their index at the
// given bit depth.
func pickPivots(shuffled []*point.Point, count int, depth, capBits uint) ([]pivotEntry, error) {
	seen := make(map[string]struct{}, count)
	pivots := make([]pivotEntry, 0, count)
	for _, p := range shuffled {
		if len(pivots) >= count {
			break
		}
		key := coordSignature(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		idx, err := indexAt(p, depth, capBits)
		if err != nil {
			return nil, err
		}
		pivots = append(pivots, pivotEntry{idx: idx, p: p})
	}
	if len(pivots) == 0 {
		// All items share one coordinate signature; fall back to the first
		// shuffled item as a single pivot so bucketing still makes progress.
		idx, err := indexAt(shuffled[0], depth, capBits)
		if err != nil {
			return nil, err
		}
		pivots = append(pivots, pivotEntry{idx: idx, p: shuffled[0]})
	}
	return pivots, nil
}

func coordSignature(p *point.Point) string {
	coords := p.Coords()
	buf := make([]byte, 0, len(coords)*5)
	for _, c := range coords {
		buf = append(buf, byte(c>>24), byte(c>>16), byte(c>>8), byte(c), ',')
	}
	return string(buf)
}

// bucketFor returns the index of the rightmost pivot whose index is <= idx,
// via binary search over the (already sorted) pivot slice.
func bucketFor(pivots []pivotEntry, idx *big.Int) int {
	lo, hi, best := 0, len(pivots)-1, 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if pivots[mid].idx.Cmp(idx) <= 0 {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// chooseNextDepth picks the bit depth for a bucket's recursive pass: the
// smallest depth' > depth at which EstimateCoarseness predicts the
// bucket's expected size shrinks to <= max(0, segment/10); if no such depth
// is found ("not learnable"), it increases depth by one. Always returns a
// value in (depth, capBits].
func chooseNextDepth(depth, capBits uint, bucket []*point.Point, rng *rand.Rand) uint {
	if depth >= capBits {
		return capBits
	}
	cells := make([]Cell, len(bucket))
	for i, p := range bucket {
		cells[i] = p
	}
	segment := len(bucket)
	target := float64(segment) / 10
	if target < 0 {
		target = 0
	}
	c, err := EstimateCoarseness(cells, capBits, coarsenessSampleSize, rng)
	if err == nil {
		for b := depth + 1; b <= capBits; b++ {
			if c[b]*float64(segment) <= target {
				return b
			}
		}
	}
	next := depth + 1
	if next > capBits {
		next = capBits
	}
	return next
}
