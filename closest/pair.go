// SPDX-License-Identifier: MIT
package closest

import (
	"math"

	"github.com/dmaksimov/hilbertcluster/classify"
	"github.com/dmaksimov/hilbertcluster/point"
)

// Pair is the result of a closest-pair search between two clusters: the
// member of A and member of B achieving (or approximating) the minimum
// squared distance between the two clusters.
type Pair struct {
	A, B            point.ID
	SquaredDistance float64
}

// centroidID is a sentinel id used only for the synthetic centroid points
// built internally by CentroidPair and KNearestClusters; it is never
// surfaced to callers.
const centroidID point.ID = 0

func members(c *classify.Classification, pts map[point.ID]*point.Point, label classify.Label) ([]*point.Point, error) {
	ids, err := c.Members(label)
	if err != nil {
		return nil, ErrUnknownLabel
	}
	out := make([]*point.Point, len(ids))
	for i, id := range ids {
		p, ok := pts[id]
		if !ok {
			return nil, ErrMissingPoint
		}
		out[i] = p
	}
	return out, nil
}

// ExactPair returns the minimum squared-distance pair across every member
// of labelA crossed with every member of labelB: O(|A|*|B|).
func ExactPair(pts map[point.ID]*point.Point, c *classify.Classification, labelA, labelB classify.Label) (Pair, error) {
	a, err := members(c, pts, labelA)
	if err != nil {
		return Pair{}, err
	}
	b, err := members(c, pts, labelB)
	if err != nil {
		return Pair{}, err
	}

	best := Pair{SquaredDistance: math.Inf(1)}
	for _, pa := range a {
		for _, pb := range b {
			d, err := pa.DistanceSquared(pb)
			if err != nil {
				return Pair{}, err
			}
			if d < best.SquaredDistance {
				best = Pair{A: pa.ID(), B: pb.ID(), SquaredDistance: d}
			}
		}
	}
	return best, nil
}

// CentroidPair approximates the closest pair between labelA and labelB in
// O(|A|+|B|): it computes A's centroid, finds B's member nearest that
// centroid, then finds A's member nearest that B point.
func CentroidPair(pts map[point.ID]*point.Point, c *classify.Classification, labelA, labelB classify.Label) (Pair, error) {
	a, err := members(c, pts, labelA)
	if err != nil {
		return Pair{}, err
	}
	b, err := members(c, pts, labelB)
	if err != nil {
		return Pair{}, err
	}

	centroid, err := point.Centroid(centroidID, a)
	if err != nil {
		return Pair{}, err
	}

	nearestB, err := nearestTo(centroid, b)
	if err != nil {
		return Pair{}, err
	}
	nearestA, err := nearestTo(nearestB, a)
	if err != nil {
		return Pair{}, err
	}

	d, err := nearestA.DistanceSquared(nearestB)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: nearestA.ID(), B: nearestB.ID(), SquaredDistance: d}, nil
}

// nearestTo returns the member of pts with the smallest squared distance
// to target.
func nearestTo(target *point.Point, pts []*point.Point) (*point.Point, error) {
	var best *point.Point
	bestDist := math.Inf(1)
	for _, p := range pts {
		d, err := target.DistanceSquared(p)
		if err != nil {
			return nil, err
		}
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best, nil
}
