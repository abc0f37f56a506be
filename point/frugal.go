// SPDX-License-Identifier: MIT
package point

import (
	"math/rand"
	"sort"

	"github.com/dmaksimov/hilbertcluster/xerrors"
)

// FrugalQuantile is a single-pass, O(1)-memory streaming quantile tracker.
// It maintains a running estimate m, a step size, and a direction sign;
// each observation nudges m toward the stream's q-th quantile.
//
// Open Question (spec.md §9) resolved here: the published Frugal-2U
// step-adjuster dampens on a discordant move by inspecting the sign of a
// (possibly negative) Step, a branch the source flags as "suspicious". We
// instead always keep step >= 1 and reset it to 1 on every discordant move
// ("increment-by-one linear variant", per spec.md §9's explicitly sanctioned
// replacement), which sidesteps the ambiguous negative-step branch entirely
// and is the variant tested by P7.
type FrugalQuantile struct {
	q     float64
	m     float64
	step  int
	sign  int // -1, 0, or +1: direction of the most recent move
	count int
	rng   *rand.Rand
}

// NewFrugalQuantile constructs a tracker for quantile q in [0,1]. rng is
// only consulted for q != 0.5 (median updates are deterministic); pass nil
// when q == 0.5.
func NewFrugalQuantile(q float64, rng *rand.Rand) (*FrugalQuantile, error) {
	if q < 0 || q > 1 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "point.NewFrugalQuantile",
			"quantile must be in [0,1]", q)
	}
	return &FrugalQuantile{q: q, step: 1, rng: rng}, nil
}

// Seed initializes the running estimate directly, bypassing the
// first-observation bootstrap. Used by EstimateMedian to seed with the
// exact median of a small shuffled sample before streaming the rest.
func (fq *FrugalQuantile) Seed(m float64) {
	fq.m = m
	fq.count = 1
}

// Observe folds one more sample into the estimate.
func (fq *FrugalQuantile) Observe(x float64) {
	fq.count++
	if fq.count == 1 {
		fq.m = x
		return
	}
	if fq.q == 0.5 || fq.rng == nil {
		fq.observeMedian(x)
		return
	}
	fq.observeGeneral(x)
}

// observeMedian implements the deterministic q=0.5 case: every discordant
// sample nudges m by one step in its direction, growing the step linearly
// on consecutive concordant moves and resetting to 1 on a direction change.
func (fq *FrugalQuantile) observeMedian(x float64) {
	switch {
	case x > fq.m:
		if fq.sign > 0 {
			fq.step++
		} else {
			fq.step = 1
		}
		fq.sign = 1
		fq.m += float64(fq.step)
		if fq.m > x {
			fq.m = x
		}
	case x < fq.m:
		if fq.sign < 0 {
			fq.step++
		} else {
			fq.step = 1
		}
		fq.sign = -1
		fq.m -= float64(fq.step)
		if fq.m < x {
			fq.m = x
		}
	}
}

// observeGeneral implements the randomized Frugal-2U variant for quantiles
// other than the median: a coin flip biased by q decides whether an
// out-of-direction sample is allowed to move the estimate, which is what
// lets a single scalar estimator track an arbitrary quantile.
func (fq *FrugalQuantile) observeGeneral(x float64) {
	coin := fq.rng.Float64()
	switch {
	case x > fq.m && coin > 1-fq.q:
		if fq.sign > 0 {
			fq.step++
		} else {
			fq.step = 1
		}
		fq.sign = 1
		fq.m += float64(fq.step)
		if fq.m > x {
			fq.m = x
		}
	case x < fq.m && coin <= 1-fq.q:
		if fq.sign < 0 {
			fq.step++
		} else {
			fq.step = 1
		}
		fq.sign = -1
		fq.m -= float64(fq.step)
		if fq.m < x {
			fq.m = x
		}
	}
}

// Estimate returns the current quantile estimate.
func (fq *FrugalQuantile) Estimate() float64 { return fq.m }

// EstimateMedian estimates the median of values using a single-pass frugal
// quantile tracker. For robustness against adversarial input orders, it
// first shuffles a copy of values and seeds the tracker with the exact
// median of the first min(20, len(values)) shuffled samples before
// streaming every shuffled value, the seed sample included (spec.md §4.1). An empty slice returns 0 with no
// error, per spec.md §7 ("empty list to quantile estimator returns 0 rather
// than erroring").
func EstimateMedian(values []uint32, rng *rand.Rand) (uint32, error) {
	if len(values) == 0 {
		return 0, nil
	}
	shuffled := make([]uint32, len(values))
	copy(shuffled, values)
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	seedCount := 20
	if seedCount > len(shuffled) {
		seedCount = len(shuffled)
	}
	seedSample := make([]uint32, seedCount)
	copy(seedSample, shuffled[:seedCount])
	sort.Slice(seedSample, func(i, j int) bool { return seedSample[i] < seedSample[j] })
	seedMedian := float64(seedSample[seedCount/2])

	fq, err := NewFrugalQuantile(0.5, nil)
	if err != nil {
		return 0, err
	}
	fq.Seed(seedMedian)
	for _, x := range shuffled {
		fq.Observe(float64(x))
	}
	est := fq.Estimate()
	if est < 0 {
		est = 0
	}
	return uint32(est + 0.5), nil
}
