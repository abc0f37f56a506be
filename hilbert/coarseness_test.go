package hilbert

import (
	"math/rand"
	"testing"

	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellPoints(t *testing.T, coords [][]uint32) []Cell {
	t.Helper()
	cells := make([]Cell, len(coords))
	for i, c := range coords {
		p, err := point.New(point.ID(i), c, 0)
		require.NoError(t, err)
		cells[i] = p
	}
	return cells
}

func TestEstimateCoarsenessBaseCase(t *testing.T) {
	c, err := EstimateCoarseness(nil, 4, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c[0])
	for b := 1; b <= 4; b++ {
		assert.Equal(t, 1.0, c[b])
	}
}

func TestEstimateCoarsenessExactForIdenticalPoints(t *testing.T) {
	pts := cellPoints(t, [][]uint32{{1, 1}, {1, 1}, {1, 1}})
	c, err := EstimateCoarseness(pts, 4, 10, nil)
	require.NoError(t, err)
	for b := 0; b <= 4; b++ {
		assert.Equal(t, 1.0, c[b], "identical points always share any cell")
	}
}

func TestEstimateCoarsenessDecreasesWithFinerCells(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	coords := make([][]uint32, 40)
	for i := range coords {
		coords[i] = []uint32{uint32(rng.Intn(256)), uint32(rng.Intn(256))}
	}
	pts := cellPoints(t, coords)
	c, err := EstimateCoarseness(pts, 8, 200, rng)
	require.NoError(t, err)
	for b := 1; b < 8; b++ {
		assert.GreaterOrEqual(t, c[b], c[b+1]-1e-9, "coarseness should be non-increasing as cells get finer")
	}
}

func TestSamplePairsDistinctAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pairs, err := samplePairs(50, 30, rng)
	require.NoError(t, err)
	assert.Len(t, pairs, 30)
	seen := map[[2]int]bool{}
	for _, p := range pairs {
		assert.Less(t, p[0], p[1])
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestSamplePairsRequiresRNG(t *testing.T) {
	_, err := samplePairs(100, 10, nil)
	require.Error(t, err)
}
