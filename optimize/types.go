package optimize

import (
	"context"

	"github.com/dmaksimov/hilbertcluster/point"
)

// ScrambleStrategy selects how many dimensions a scramble-based iteration
// disturbs relative to the previous iteration, once dimensionality is too
// high to enumerate permutations exhaustively.
type ScrambleStrategy int

const (
	// ScrambleHalf halves the candidate dimension count each iteration:
	// candidates(iter) = min(D, max(5, D/2^iter)). This is the formula
	// named directly in the design notes.
	ScrambleHalf ScrambleStrategy = iota

	// ScrambleSeventy retains 70% of the prior candidate count each
	// iteration instead of halving it, for a gentler decay when D is
	// only moderately above the exhaustive-enumeration limit.
	ScrambleSeventy
)

// exhaustiveDimLimit is the dimensionality at or below which Optimize
// enumerates every permutation instead of scrambling.
const exhaustiveDimLimit = 7

// Params configures the permutation search.
type Params struct {
	// OutlierSize, NoiseSkip, ReducedNoiseSkip, MaxRatio feed every
	// gapstat.Estimate call made while scoring a candidate ordering.
	OutlierSize      int
	NoiseSkip        int
	ReducedNoiseSkip int
	MaxRatio         float64

	// MaxIterations bounds the total number of candidate permutations
	// evaluated.
	MaxIterations int

	// ParallelTrials is the number of worker goroutines evaluating
	// candidates concurrently.
	ParallelTrials int

	// MaxItersWithoutImprovement stops the search after this many
	// consecutive non-improving iterations.
	MaxItersWithoutImprovement int

	// UseSample enables subsampling the point set while searching; the
	// top-K results are re-evaluated against the full population before
	// Optimize returns.
	UseSample bool

	// BitsPerDimension is the Hilbert bit width used while sorting
	// candidates; <=0 means infer it from the data's coordinate range.
	BitsPerDimension int

	// ScrambleStrategy selects the decay curve used to size scrambles
	// once D exceeds exhaustiveDimLimit.
	ScrambleStrategy ScrambleStrategy

	// KeepTopK is the size of the bounded max-heap of best-so-far
	// results retained for final re-evaluation against the full
	// population.
	KeepTopK int

	// Seed drives every derived worker RNG stream, for reproducible
	// searches.
	Seed int64

	// Ctx is checked at the top of each iteration and at each worker-task
	// boundary (spec.md §5: "a cooperative cancellation flag is checked at
	// the top of each iteration and at each worker-task boundary").
	// Already-started work completes; only the scheduling of further
	// iterations and tasks stops. A nil Ctx is treated as
	// context.Background().
	Ctx context.Context
}

// DefaultParams returns reasonable defaults for a first search.
func DefaultParams() Params {
	return Params{
		OutlierSize:                1,
		NoiseSkip:                  2,
		ReducedNoiseSkip:           -1,
		MaxRatio:                   5,
		MaxIterations:              200,
		ParallelTrials:             4,
		MaxItersWithoutImprovement: 20,
		UseSample:                  false,
		BitsPerDimension:           0,
		ScrambleStrategy:           ScrambleHalf,
		KeepTopK:                  8,
		Seed:                       1,
		Ctx:                        context.Background(),
	}
}

// Validate reports whether p holds a coherent combination of fields.
func (p Params) Validate() error {
	if p.MaxIterations <= 0 {
		return ErrBadParams
	}
	if p.ParallelTrials <= 0 {
		return ErrBadParams
	}
	if p.MaxItersWithoutImprovement <= 0 {
		return ErrBadParams
	}
	if p.KeepTopK <= 0 {
		return ErrBadParams
	}
	if p.MaxRatio <= 1 {
		return ErrBadParams
	}
	return nil
}

// Result is a single scored candidate: a permutation plus the Hilbert
// ordering and cluster-gap metric it produced.
type Result struct {
	Permutation           point.Permutation
	Ordering              []point.ID
	EstimatedClusterCount int
	MergeSquaredDistance  float64
	SampleSizeUsed        int

	// OutlierCount is the gap-statistic scan's outlier tally for this
	// candidate, carried through so callers can feed the result straight
	// into gapstat.ClusteringTendency without re-scanning.
	OutlierCount int
}

// better reports whether r is a strictly better candidate than other: a
// smaller excluding-outliers cluster count wins (the search's stated
// goal); ties are broken by a smaller merge distance (tighter, more
// confident threshold).
func (r Result) better(other Result) bool {
	if r.EstimatedClusterCount != other.EstimatedClusterCount {
		return r.EstimatedClusterCount < other.EstimatedClusterCount
	}
	return r.MergeSquaredDistance < other.MergeSquaredDistance
}
