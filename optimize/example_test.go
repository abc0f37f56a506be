// Package optimize_test demonstrates the exported permutation-search API
// via runnable examples.
package optimize_test

import (
	"fmt"
	"math/rand"

	"github.com/dmaksimov/hilbertcluster/optimize"
	"github.com/dmaksimov/hilbertcluster/point"
)

// twoBlobs builds two well-separated jittered clusters in d dimensions,
// perSide points each.
func twoBlobs(d, perSide int) []*point.Point {
	rng := rand.New(rand.NewSource(7))
	pts := make([]*point.Point, 0, perSide*2)
	id := point.ID(0)
	for side := 0; side < 2; side++ {
		center := uint32(100)
		if side == 1 {
			center = 900
		}
		for i := 0; i < perSide; i++ {
			coords := make([]uint32, d)
			for dim := 0; dim < d; dim++ {
				jitter := int32(rng.Intn(11)) - 5
				v := int32(center) + jitter
				if v < 0 {
					v = 0
				}
				coords[dim] = uint32(v)
			}
			p, _ := point.New(id, coords, 0)
			pts = append(pts, p)
			id++
		}
	}
	return pts
}

// ExampleOptimize searches a small dimensionality (so every permutation is
// enumerated exhaustively) for the ordering that best separates two
// well-separated blobs.
func ExampleOptimize() {
	// 1) Ten points per side, four dimensions: 20 points total, comfortably
	//    above the optimizer's minimum input size.
	pts := twoBlobs(4, 10)

	// 2) Run a short search: a handful of iterations is enough once the
	//    blobs are this well separated.
	params := optimize.DefaultParams()
	params.MaxIterations = 10
	params.ParallelTrials = 2
	params.MaxItersWithoutImprovement = 5

	result, err := optimize.Optimize(pts, params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The search should converge on (at most) the two real clusters.
	fmt.Println(result.EstimatedClusterCount <= 2)
	// Output: true
}
