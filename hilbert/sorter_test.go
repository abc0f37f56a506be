package hilbert

import (
	"math/big"
	"math/rand"
	"sort"
	"testing"

	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(rng *rand.Rand, n, d int, bits uint) []*point.Point {
	limit := 1 << bits
	pts := make([]*point.Point, n)
	for i := 0; i < n; i++ {
		coords := make([]uint32, d)
		for j := range coords {
			coords[j] = uint32(rng.Intn(limit))
		}
		p, err := point.New(point.ID(i), coords, uint32(limit-1))
		if err != nil {
			panic(err)
		}
		pts[i] = p
	}
	return pts
}

func indexByID(pts []*point.Point) map[point.ID]*point.Point {
	m := make(map[point.ID]*point.Point, len(pts))
	for _, p := range pts {
		m[p.ID()] = p
	}
	return m
}

// TestSortIsTotalAndNonDecreasing is property P2: sort_by_hilbert(points, B)
// yields a total order whose indices are non-decreasing.
func TestSortIsTotalAndNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const bits = 6
	pts := randomPoints(rng, 300, 3, bits)
	byID := indexByID(pts)

	ordering, err := Sort(pts, bits, nil, nil, rng)
	require.NoError(t, err)
	require.Len(t, ordering, len(pts))

	seen := make(map[point.ID]bool, len(pts))
	prevIdx := big.NewInt(0)
	for _, id := range ordering {
		assert.False(t, seen[id], "duplicate id in ordering")
		seen[id] = true
		p := byID[id]
		idx, err := Index(p.Coords(), bits)
		require.NoError(t, err)
		assert.True(t, idx.Cmp(prevIdx) >= 0, "ordering is not non-decreasing")
		prevIdx = idx
	}
	assert.Len(t, seen, len(pts))
}

func TestSortSmallDatasetMatchesDirectSort(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	const bits = 5
	pts := randomPoints(rng, 20, 2, bits)

	ordering, err := Sort(pts, bits, nil, nil, rng)
	require.NoError(t, err)

	type entry struct {
		id  point.ID
		idx string
	}
	want := make([]point.ID, len(pts))
	byID := indexByID(pts)
	idxStrs := make(map[point.ID]string, len(pts))
	for _, p := range pts {
		idx, err := Index(p.Coords(), bits)
		require.NoError(t, err)
		idxStrs[p.ID()] = idx.String()
	}
	all := make([]entry, len(pts))
	for i, p := range pts {
		all[i] = entry{id: p.ID(), idx: idxStrs[p.ID()]}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].idx != all[j].idx {
			return bigLess(all[i].idx, all[j].idx)
		}
		return all[i].id < all[j].id
	})
	for i, e := range all {
		want[i] = e.id
	}
	_ = byID
	assert.Equal(t, want, ordering)
}

func bigLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func TestSortEmptyInput(t *testing.T) {
	ordering, err := Sort(nil, 4, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, ordering)
}

func TestSortWithPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const bits = 5
	pts := randomPoints(rng, 80, 3, bits)
	perm := point.Permutation{2, 0, 1}

	ordering, err := Sort(pts, bits, perm, nil, rng)
	require.NoError(t, err)
	assert.Len(t, ordering, len(pts))
}
