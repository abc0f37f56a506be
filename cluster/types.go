package cluster

import (
	"github.com/dmaksimov/hilbertcluster/optimize"
	"github.com/dmaksimov/hilbertcluster/refine"
)

// OrderedResult is the outcome of OptimizeOrder: a permutation, the
// Hilbert ordering it produced, the estimated cluster count, the derived
// merge squared distance, and the sample size actually used (spec.md §6
// operation 1's return shape). It is exactly optimize.Result; the alias
// exists so callers of this facade never need to import package optimize
// directly.
type OrderedResult = optimize.Result

// SearchParams configures OptimizeOrder. It is exactly optimize.Params.
type SearchParams = optimize.Params

// DefaultSearchParams returns optimize.DefaultParams().
func DefaultSearchParams() SearchParams { return optimize.DefaultParams() }

// RefinementParams configures Classify. It is exactly refine.Params,
// matching spec.md §6 operation 2's {unmergeable_size, window_size,
// neighbor_count, neighborhood_rank_weight, outlier_size}.
type RefinementParams = refine.Params

// DefaultRefinementParams returns refine.DefaultParams().
func DefaultRefinementParams() RefinementParams { return refine.DefaultParams() }
