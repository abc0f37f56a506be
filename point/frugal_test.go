package point

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFrugalQuantileEmptyInputReturnsZero covers spec.md §7: "empty list to
// quantile estimator returns 0 rather than erroring".
func TestFrugalQuantileEmptyInputReturnsZero(t *testing.T) {
	med, err := EstimateMedian(nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, med)
}

func TestFrugalQuantileRejectsNegativeQuantile(t *testing.T) {
	_, err := NewFrugalQuantile(-0.1, nil)
	require.Error(t, err)
}

// TestFrugalQuantileConvergesOnSortedRun is P7: frugal quantile on sorted
// [1..N] with q=0.5 converges to within 5% of floor(N/2) after N
// iterations, given the linear step adjuster.
func TestFrugalQuantileConvergesOnSortedRun(t *testing.T) {
	const n = 2000
	fq, err := NewFrugalQuantile(0.5, nil)
	require.NoError(t, err)
	fq.Seed(1)
	for i := 1; i <= n; i++ {
		fq.Observe(float64(i))
	}
	want := float64(n / 2)
	got := fq.Estimate()
	tolerance := 0.05 * want
	assert.InDeltaf(t, want, got, tolerance, "frugal median %.1f not within 5%% of %.1f", got, want)
}

func TestEstimateMedianOnKnownData(t *testing.T) {
	values := make([]uint32, 0, 1001)
	for i := 0; i <= 1000; i++ {
		values = append(values, uint32(i))
	}
	rng := rand.New(rand.NewSource(7))
	med, err := EstimateMedian(values, rng)
	require.NoError(t, err)
	assert.InDelta(t, 500, float64(med), 50)
}

func TestEstimateMedianRobustToAdversarialOrder(t *testing.T) {
	// Adversarial: monotonically increasing then decreasing, which defeats a
	// naive unseeeded tracker fed in input order.
	values := make([]uint32, 0, 2000)
	for i := 0; i < 1000; i++ {
		values = append(values, uint32(i))
	}
	for i := 999; i >= 0; i-- {
		values = append(values, uint32(i))
	}
	rng := rand.New(rand.NewSource(3))
	med, err := EstimateMedian(values, rng)
	require.NoError(t, err)
	assert.InDelta(t, 500, float64(med), 100)
}

func TestFrugalQuantileNonMedianIsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fq, err := NewFrugalQuantile(0.9, rng)
	require.NoError(t, err)
	fq.Seed(0)
	for i := 0; i < 5000; i++ {
		fq.Observe(float64(i % 100))
	}
	got := fq.Estimate()
	assert.True(t, got >= 0 && got <= 100, "estimate %v out of bounds", got)
	assert.False(t, math.IsNaN(got))
}
