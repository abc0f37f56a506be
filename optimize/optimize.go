// SPDX-License-Identifier: MIT
package optimize

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/dmaksimov/hilbertcluster/gapstat"
	"github.com/dmaksimov/hilbertcluster/hilbert"
	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/dmaksimov/hilbertcluster/rngutil"
	"github.com/dmaksimov/hilbertcluster/xerrors"
)

// job pairs a candidate permutation with the worker RNG stream derived for
// it. Derivation happens sequentially, before any goroutine touches it:
// math/rand.Rand is not goroutine-safe, and rngutil.Derive mutates the
// shared base stream's state on every call.
type job struct {
	perm point.Permutation
	rng  *rand.Rand
}

// minPoints is the smallest point-set size Optimize accepts, per spec.md
// §7's EmptyInput case: "fewer than 10 points to the optimizer".
const minPoints = 10

// Optimize searches for the dimension permutation whose Hilbert ordering
// produces the smallest cluster-gap estimator count, per spec.md §4.9: an
// identity-permutation bootstrap, exhaustive enumeration for
// dimensionality at or below exhaustiveDimLimit, scramble-based search
// above it, evaluated by a bounded pool of concurrent workers against a
// shared best-result tracker and top-K heap, with optional subsampling.
func Optimize(points []*point.Point, params Params) (Result, error) {
	if len(points) < minPoints {
		return Result{}, ErrEmptyInput
	}
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	ctx := params.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	d := points[0].Dim()
	for _, p := range points {
		if p.Dim() != d {
			return Result{}, xerrors.New(xerrors.KindDimensionMismatch, "optimize.Optimize",
				"points have inconsistent dimensionality", nil)
		}
	}

	bits := uint(params.BitsPerDimension)
	if params.BitsPerDimension <= 0 {
		bits = inferBits(points)
	}

	lookup := make(map[point.ID]*point.Point, len(points))
	for _, p := range points {
		lookup[p.ID()] = p
	}

	gapParams := gapstat.Params{
		OutlierSize:      params.OutlierSize,
		NoiseSkip:        params.NoiseSkip,
		ReducedNoiseSkip: params.ReducedNoiseSkip,
		MaxRatio:         params.MaxRatio,
		LowestCountSeen:  int(^uint(0) >> 1),
	}

	var samp *sampler
	if params.UseSample {
		samp = newSampler(points)
	}

	baseRNG := rngutil.New(params.Seed)

	evaluate := func(perm point.Permutation, workingSet []*point.Point, workerRNG *rand.Rand, gp gapstat.Params) (Result, error) {
		ordering, err := hilbert.Sort(workingSet, bits, perm, nil, workerRNG)
		if err != nil {
			return Result{}, err
		}
		distances := consecutiveDistances(ordering, lookup)
		if len(distances) == 0 {
			return Result{Permutation: perm, Ordering: ordering, EstimatedClusterCount: 1, SampleSizeUsed: len(workingSet)}, nil
		}
		gr, err := gapstat.Estimate(distances, gp)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Permutation:           perm,
			Ordering:              ordering,
			EstimatedClusterCount: gr.ClusterCountExcludingOutliers,
			MergeSquaredDistance:  gr.MergeSquaredDistance,
			SampleSizeUsed:        len(workingSet),
			OutlierCount:          gr.OutlierCount,
		}, nil
	}

	identity := point.Identity(d)
	best, err := evaluate(identity, points, rngutil.Derive(baseRNG, 0), gapParams)
	if err != nil {
		return Result{}, err
	}
	gapParams.LowestCountSeen = best.EstimatedClusterCount

	tracker := newTopKTracker(params.KeepTopK)
	tracker.offer(best)

	startingCount := best.EstimatedClusterCount
	if best.EstimatedClusterCount <= 2 {
		return finalize(best, tracker, lookup, bits, gapParams, samp)
	}

	var candidates <-chan point.Permutation
	if d <= exhaustiveDimLimit {
		candidates = enumeratePermutations(d)
		<-candidates // discard identity: already evaluated as the bootstrap
	}

	var mu sync.Mutex
	sampleSize := 0
	if samp != nil {
		sampleSize = samp.sizeFor(best.EstimatedClusterCount)
	}

	iteration := 0
	itersWithoutImprovement := 0
	for iteration < params.MaxIterations && itersWithoutImprovement < params.MaxItersWithoutImprovement {
		select {
		case <-ctx.Done():
			return finalize(best, tracker, lookup, bits, gapParams, samp)
		default:
		}
		iteration++

		batch := make([]job, 0, params.ParallelTrials)
		exhausted := false
		for w := 0; w < params.ParallelTrials; w++ {
			if candidates != nil {
				perm, ok := <-candidates
				if !ok {
					candidates = nil
					exhausted = true
					break
				}
				workerRNG := rngutil.Derive(baseRNG, uint64(iteration)*10000+uint64(w))
				batch = append(batch, job{perm: perm, rng: workerRNG})
				continue
			}
			k := scrambleCount(d, iteration, params.ScrambleStrategy)
			mu.Lock()
			base := best.Permutation
			mu.Unlock()
			scrambleRNG := rngutil.Derive(baseRNG, uint64(iteration)*1000+uint64(w))
			scrambled := base.Scramble(k, scrambleRNG)
			workerRNG := rngutil.Derive(baseRNG, uint64(iteration)*10000+uint64(w))
			batch = append(batch, job{perm: scrambled, rng: workerRNG})
		}
		if len(batch) == 0 {
			break
		}

		var wg sync.WaitGroup
		improved := false
		for idx, j := range batch {
			wg.Add(1)
			go func(idx int, j job) {
				defer wg.Done()

				select {
				case <-ctx.Done():
					return
				default:
				}

				workerRNG := j.rng

				mu.Lock()
				gpSnapshot := gapParams
				size := sampleSize
				mu.Unlock()

				workingSet := points
				usedSize := len(points)
				if samp != nil {
					workingSet = samp.draw(size, workerRNG)
					usedSize = size
				}

				res, err := evaluate(j.perm, workingSet, workerRNG, gpSnapshot)
				if err != nil {
					return
				}

				if samp != nil && res.EstimatedClusterCount < startingCount/4 {
					mu.Lock()
					if !samp.wasRejected(usedSize) {
						next := samp.grow(usedSize)
						if next > sampleSize {
							sampleSize = next
						}
					}
					mu.Unlock()
					return
				}

				mu.Lock()
				defer mu.Unlock()
				tracker.offer(res)
				if res.better(best) {
					best = res
					improved = true
					if res.EstimatedClusterCount < gapParams.LowestCountSeen {
						gapParams.LowestCountSeen = res.EstimatedClusterCount
					}
				}
			}(idx, j)
		}
		wg.Wait()

		if improved {
			itersWithoutImprovement = 0
		} else {
			itersWithoutImprovement++
		}
		if best.EstimatedClusterCount <= 2 || exhausted {
			break
		}
	}

	return finalize(best, tracker, lookup, bits, gapParams, samp)
}

// finalize re-scores every top-K retained result against the full,
// unsampled population (spec.md §4.9's "re-evaluate the top-K results
// against the full unsampled population") and returns the best of those,
// or best unchanged when sampling was never used.
func finalize(best Result, tracker *topKTracker, lookup map[point.ID]*point.Point, bits uint, gapParams gapstat.Params, samp *sampler) (Result, error) {
	if samp == nil {
		return best, nil
	}

	var final Result
	found := false
	for _, r := range tracker.results() {
		ordering, err := hilbert.Sort(samp.full, bits, r.Permutation, nil, rngutil.New(1))
		if err != nil {
			return Result{}, err
		}
		distances := consecutiveDistances(ordering, lookup)
		if len(distances) == 0 {
			continue
		}
		gr, err := gapstat.Estimate(distances, gapParams)
		if err != nil {
			return Result{}, err
		}
		candidate := Result{
			Permutation:           r.Permutation,
			Ordering:              ordering,
			EstimatedClusterCount: gr.ClusterCountExcludingOutliers,
			MergeSquaredDistance:  gr.MergeSquaredDistance,
			SampleSizeUsed:        len(samp.full),
			OutlierCount:          gr.OutlierCount,
		}
		if !found || candidate.better(final) {
			final = candidate
			found = true
		}
	}
	if !found {
		return best, nil
	}
	return final, nil
}

func consecutiveDistances(ordering []point.ID, lookup map[point.ID]*point.Point) []float64 {
	if len(ordering) < 2 {
		return nil
	}
	out := make([]float64, len(ordering)-1)
	for i := 0; i < len(ordering)-1; i++ {
		d, err := lookup[ordering[i]].DistanceSquared(lookup[ordering[i+1]])
		if err != nil {
			continue
		}
		out[i] = d
	}
	return out
}

// inferBits picks the smallest bit width covering every point's largest
// coordinate.
func inferBits(points []*point.Point) uint {
	var maxCoord uint32
	for _, p := range points {
		if p.MaxCoord() > maxCoord {
			maxCoord = p.MaxCoord()
		}
	}
	bits := uint(0)
	for (uint32(1) << bits) <= maxCoord {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

// scrambleCount picks how many dimensions an iteration's scramble should
// disturb: min(D, max(5, D/2^iter)) under ScrambleHalf, or the gentler
// min(D, max(5, D*0.7^iter)) decay under ScrambleSeventy.
func scrambleCount(d, iter int, strategy ScrambleStrategy) int {
	var candidates float64
	switch strategy {
	case ScrambleSeventy:
		candidates = float64(d) * math.Pow(0.7, float64(iter))
	default:
		candidates = float64(d) / math.Pow(2, float64(iter))
	}
	k := int(math.Max(5, candidates))
	if k > d {
		k = d
	}
	return k
}
