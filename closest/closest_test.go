package closest

import (
	"math"
	"testing"

	"github.com/dmaksimov/hilbertcluster/classify"
	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, id point.ID, coords ...uint32) *point.Point {
	t.Helper()
	p, err := point.New(point.ID(id), coords, 0)
	require.NoError(t, err)
	return p
}

func twoClusterFixture(t *testing.T) (map[point.ID]*point.Point, *classify.Classification) {
	t.Helper()
	pts := map[point.ID]*point.Point{
		1: mustPoint(t, 1, 0, 0),
		2: mustPoint(t, 2, 1, 0),
		3: mustPoint(t, 3, 0, 1),
		4: mustPoint(t, 4, 100, 100),
		5: mustPoint(t, 5, 101, 100),
		6: mustPoint(t, 6, 100, 101),
	}
	c := classify.New()
	c.Add(1, 1)
	c.Add(2, 1)
	c.Add(3, 1)
	c.Add(4, 2)
	c.Add(5, 2)
	c.Add(6, 2)
	return pts, c
}

func TestExactPairFindsTrueMinimum(t *testing.T) {
	pts, c := twoClusterFixture(t)
	pair, err := ExactPair(pts, c, 1, 2)
	require.NoError(t, err)
	// nearest cross-cluster pair is (2,4) or (3,4): both at distance 99^2+100^2
	assert.Contains(t, []point.ID{2, 3}, pair.A)
	assert.Equal(t, point.ID(4), pair.B)
}

func TestExactPairUnknownLabel(t *testing.T) {
	pts, c := twoClusterFixture(t)
	_, err := ExactPair(pts, c, 1, 99)
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestCentroidPairApproximatesExact(t *testing.T) {
	pts, c := twoClusterFixture(t)
	exact, err := ExactPair(pts, c, 1, 2)
	require.NoError(t, err)
	approx, err := CentroidPair(pts, c, 1, 2)
	require.NoError(t, err)
	// centroid approximation should be within a small factor of exact for
	// this well-separated fixture.
	assert.Less(t, approx.SquaredDistance, exact.SquaredDistance*2)
}

func TestKNearestClustersRespectsDistanceCap(t *testing.T) {
	pts, c := twoClusterFixture(t)
	results, err := KNearestClusters(pts, c, 1, 0, math.Inf(1), false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.Len(t, r.Neighbors, 1)
	}

	tight, err := KNearestClusters(pts, c, 1, 0, 1, false)
	require.NoError(t, err)
	for _, r := range tight {
		assert.Empty(t, r.Neighbors, "cap of 1 should exclude the distant cross-cluster pair")
	}
}

func TestAttachOutliersOnlyPairsSmallWithLarge(t *testing.T) {
	pts := map[point.ID]*point.Point{
		1: mustPoint(t, 1, 0, 0),
		2: mustPoint(t, 2, 1, 0),
		3: mustPoint(t, 3, 0, 1),
		4: mustPoint(t, 4, 2, 0),
		5: mustPoint(t, 5, 50, 50), // lone outlier point
	}
	c := classify.New()
	c.Add(1, 1)
	c.Add(2, 1)
	c.Add(3, 1)
	c.Add(4, 1)
	c.Add(5, 2) // singleton "cluster"

	results, err := AttachOutliers(pts, c, 1, math.Inf(1))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, point.ID(5), results[0].A)
}

func TestFindClusterExhaustivelySingleClusterReturnsEmpty(t *testing.T) {
	pts := map[point.ID]*point.Point{1: mustPoint(t, 1, 0, 0)}
	c := classify.New()
	c.Add(1, 42)

	result, ok, err := FindClusterExhaustively(pts, c, 42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Result{}, result)
}

func TestFindClusterExhaustivelyFindsNearest(t *testing.T) {
	pts, c := twoClusterFixture(t)
	result, ok, err := FindClusterExhaustively(pts, c, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, classify.Label(2), result.Label)
}
