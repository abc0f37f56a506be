// SPDX-License-Identifier: MIT
package gapstat

import "sort"

// Estimate scans distances, the sequence of squared distances between
// consecutive points of a Hilbert-ordered sequence of N points (so
// len(distances) == N-1), and derives an upper bound on the number of
// natural clusters plus a merge-distance threshold.
//
// The scan sorts distances, looks for the most convincing break between
// "small, intra-cluster" and "large, inter-cluster" gaps by tracking both
// the largest absolute jump and the largest ratio between consecutive
// sorted values, then walks the original (unsorted) sequence counting runs
// of gaps at or below the chosen threshold to separate genuine clusters
// from short outlier runs.
func Estimate(distances []float64, params Params) (Result, error) {
	if len(distances) == 0 {
		return Result{}, ErrEmptyInput
	}
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	n := len(distances) + 1
	s := make([]float64, len(distances))
	copy(s, distances)
	sort.Float64s(s)

	skip := params.NoiseSkip
	if params.ReducedNoiseSkip >= 0 && params.LowestCountSeen < 2*params.NoiseSkip {
		skip = params.ReducedNoiseSkip
	}

	jumpIdx, ratioIdx := scanBreak(s, skip, params.MaxRatio)

	index := jumpIdx
	half := len(s) / 2
	switch {
	case jumpIdx == ratioIdx:
		index = jumpIdx
	case ratioIdx < half:
		index = jumpIdx
	default:
		index = ratioIdx
	}
	index -= skip + 1
	if index < 0 {
		index = 0
	}
	if index >= len(s) {
		index = len(s) - 1
	}

	threshold := s[index]
	median := s[index/2]

	includingOutliers := n - index
	excludingOutliers, outlierCount := countRuns(distances, threshold, params.OutlierSize)

	return Result{
		ClusterCountExcludingOutliers: excludingOutliers,
		ClusterCountIncludingOutliers: includingOutliers,
		MergeSquaredDistance:          threshold,
		MedianSquaredDistance:         median,
		OutlierCount:                  outlierCount,
	}, nil
}

// scanBreak scans s from index 1+skip, returning the index of the largest
// absolute jump s[i]-s[i-1-skip] and the index of the largest ratio
// s[i]/s[i-1-skip] (only considered once i>10 and the denominator exceeds
// 1). The ratio scan breaks early once it passes the sequence's halfway
// point and the current best ratio exceeds maxRatio.
func scanBreak(s []float64, skip int, maxRatio float64) (jumpIdx, ratioIdx int) {
	start := 1 + skip
	if start >= len(s) {
		return 0, 0
	}

	bestJump := -1.0
	bestRatio := -1.0
	half := len(s) / 2

	for i := start; i < len(s); i++ {
		prev := s[i-1-skip]
		jump := s[i] - prev
		if jump > bestJump {
			bestJump = jump
			jumpIdx = i
		}
		if i > 10 && prev > 1 {
			ratio := s[i] / prev
			if ratio > bestRatio {
				bestRatio = ratio
				ratioIdx = i
			}
			if i > half && bestRatio > maxRatio {
				break
			}
		}
	}
	return jumpIdx, ratioIdx
}

// Tendency labels are the values ClusteringTendency returns.
const (
	TendencyClustered   = "Clustered"
	TendencyUnclustered = "Unclustered"
)

// ClusteringTendency reports whether r shows genuine cluster structure or
// none at all (spec.md §8 S3): a population with no real clusters settles
// on a single run, or on a cluster count that equals its own outlier
// count, leaving nothing behind that isn't noise.
func ClusteringTendency(r Result) string {
	if r.ClusterCountExcludingOutliers <= 1 || r.ClusterCountExcludingOutliers == r.OutlierCount {
		return TendencyUnclustered
	}
	return TendencyClustered
}

// countRuns walks distances (in original, unsorted order) and groups
// consecutive entries into runs wherever every gap in the run is at or
// below threshold. A run counts as a cluster only if its point count (run
// length + 1) exceeds outlierSize; shorter runs contribute their points to
// the outlier tally instead.
func countRuns(distances []float64, threshold float64, outlierSize int) (clusterCount, outlierCount int) {
	record := func(runLen int) {
		if runLen > outlierSize {
			clusterCount++
		} else {
			outlierCount += runLen
		}
	}

	runStart := 0
	for i := 0; i < len(distances); i++ {
		if distances[i] > threshold {
			record(i - runStart + 1)
			runStart = i + 1
		}
	}
	record(len(distances) - runStart + 1)
	return clusterCount, outlierCount
}
