// SPDX-License-Identifier: MIT
package refine

import (
	"math"
	"sort"

	"github.com/dmaksimov/hilbertcluster/classify"
	"github.com/dmaksimov/hilbertcluster/closest"
	"github.com/dmaksimov/hilbertcluster/density"
	"github.com/dmaksimov/hilbertcluster/point"
)

// bridge is a candidate merge edge between two Hilbert-adjacent points,
// carrying the smoothed density rank that will order the merge pass (lower
// rank = denser, processed first).
type bridge struct {
	a, b point.ID
	rank float64
}

// Refine performs the density-based agglomeration pass of spec.md §4.10:
// starting from a classification where every point in order is its own
// singleton label, it (1) records adjacent pairs whose squared distance is
// at most mergeSquaredDistance together with their smoothed density rank,
// (2) processes those candidate merges from densest to sparsest, merging
// two distinct labels unless both already hold at least
// params.UnmergeableSize members, then (3) reattaches any cluster still
// smaller than params.UnmergeableSize to its nearest large neighbor via the
// exact closest-pair routine, ignoring the merge-distance cap.
func Refine(order []point.ID, pts map[point.ID]*point.Point, mergeSquaredDistance float64, params Params) (*classify.Classification, error) {
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	for _, id := range order {
		if _, ok := pts[id]; !ok {
			return nil, ErrMissingPoint
		}
	}

	c := classify.New()
	for i, id := range order {
		c.Add(id, classify.Label(i))
	}

	engine, err := density.NewEngine(order, pts, params.WindowSize, params.NeighborCount)
	if err != nil {
		return nil, err
	}
	smoothed, err := engine.SmoothedRanks(params.NeighborhoodRankWeight)
	if err != nil {
		return nil, err
	}

	var bridges []bridge
	for i := 0; i < len(order)-1; i++ {
		pa, pb := pts[order[i]], pts[order[i+1]]
		d, err := pa.DistanceSquared(pb)
		if err != nil {
			return nil, err
		}
		if d > mergeSquaredDistance {
			continue
		}
		rank := smoothed[i]
		if smoothed[i+1] < rank {
			rank = smoothed[i+1]
		}
		bridges = append(bridges, bridge{a: order[i], b: order[i+1], rank: rank})
	}
	sort.SliceStable(bridges, func(i, j int) bool { return bridges[i].rank < bridges[j].rank })

	for _, br := range bridges {
		la, ok := c.Label(br.a)
		if !ok {
			continue
		}
		lb, ok := c.Label(br.b)
		if !ok {
			continue
		}
		if la == lb {
			continue
		}
		sizeA, err := labelSize(c, la)
		if err != nil {
			return nil, err
		}
		sizeB, err := labelSize(c, lb)
		if err != nil {
			return nil, err
		}
		if sizeA >= params.UnmergeableSize && sizeB >= params.UnmergeableSize {
			continue
		}
		c.Merge(la, []classify.Label{lb})
	}

	if err := attachOutliers(pts, c, params.UnmergeableSize); err != nil {
		return nil, err
	}

	return c, nil
}

func labelSize(c *classify.Classification, label classify.Label) (int, error) {
	members, err := c.Members(label)
	if err != nil {
		return 0, nil // label vanished via an earlier merge; treat as absent
	}
	return len(members), nil
}

// attachOutliers reassigns every cluster smaller than unmergeableSize to
// its nearest large-cluster neighbor, using the exact closest-pair routine
// and ignoring the merge-distance cap, per spec.md §4.10 step 4.
func attachOutliers(pts map[point.ID]*point.Point, c *classify.Classification, unmergeableSize int) error {
	if len(c.Labels()) <= 1 {
		return nil
	}
	pairs, err := closest.AttachOutliers(pts, c, unmergeableSize-1, math.MaxFloat64)
	if err != nil {
		return err
	}
	for _, pr := range pairs {
		la, ok := c.Label(pr.A)
		if !ok {
			continue
		}
		lb, ok := c.Label(pr.B)
		if !ok {
			continue
		}
		if la == lb {
			continue
		}
		sizeA, err := labelSize(c, la)
		if err != nil {
			return err
		}
		if sizeA >= unmergeableSize {
			// la was already folded into a large cluster by an earlier,
			// closer pair; nothing left to attach.
			continue
		}
		c.Merge(lb, []classify.Label{la})
	}
	return nil
}
