// SPDX-License-Identifier: MIT
package closest

import (
	"sort"

	"github.com/dmaksimov/hilbertcluster/classify"
	"github.com/dmaksimov/hilbertcluster/point"
)

// NeighborSet is label's K nearest neighboring clusters, nearest first.
type NeighborSet struct {
	Label     classify.Label
	Neighbors []classify.Label
}

// centroidPoint computes label's centroid, tagging it with the sentinel
// centroidID; every centroid carries that same id, and it is never surfaced
// to callers.
func centroidPoint(pts map[point.ID]*point.Point, c *classify.Classification, label classify.Label) (*point.Point, error) {
	ms, err := members(c, pts, label)
	if err != nil {
		return nil, err
	}
	return point.Centroid(centroidID, ms)
}

type labelPair struct {
	a, b classify.Label
	dist float64
}

// KNearestClusters finds, for every label in c whose member count exceeds
// minSize, its K nearest neighboring labels (also restricted to labels
// exceeding minSize) subject to maxSquaredDistance, per spec.md §4.7:
// centroid-to-centroid distances are computed once and sorted, then pairs
// are processed in ascending order, skipping any pair where both labels
// already hold K neighbors. approximate selects CentroidPair over
// ExactPair for the actual pair distance used against maxSquaredDistance.
func KNearestClusters(pts map[point.ID]*point.Point, c *classify.Classification, k, minSize int, maxSquaredDistance float64, approximate bool) ([]NeighborSet, error) {
	if k <= 0 || minSize < 0 {
		return nil, ErrBadParams
	}

	var eligible []classify.Label
	centroids := make(map[classify.Label]*point.Point)
	for _, label := range c.Labels() {
		ids, err := c.Members(label)
		if err != nil {
			return nil, err
		}
		if len(ids) <= minSize {
			continue
		}
		cen, err := centroidPoint(pts, c, label)
		if err != nil {
			return nil, err
		}
		eligible = append(eligible, label)
		centroids[label] = cen
	}
	if len(eligible) < 2 {
		return nil, nil
	}

	var pairs []labelPair
	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			d, err := centroids[eligible[i]].DistanceSquared(centroids[eligible[j]])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, labelPair{a: eligible[i], b: eligible[j], dist: d})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	neighbors := make(map[classify.Label][]classify.Label, len(eligible))
	for _, l := range eligible {
		neighbors[l] = nil
	}
	full := func(l classify.Label) bool { return len(neighbors[l]) >= k }

	for _, pr := range pairs {
		if full(pr.a) && full(pr.b) {
			continue
		}
		pair, err := pairDistance(pts, c, pr.a, pr.b, approximate)
		if err != nil {
			return nil, err
		}
		if pair.SquaredDistance > maxSquaredDistance {
			continue
		}
		if !full(pr.a) {
			neighbors[pr.a] = append(neighbors[pr.a], pr.b)
		}
		if !full(pr.b) {
			neighbors[pr.b] = append(neighbors[pr.b], pr.a)
		}
	}

	results := make([]NeighborSet, 0, len(eligible))
	for _, l := range eligible {
		results = append(results, NeighborSet{Label: l, Neighbors: neighbors[l]})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Label < results[j].Label })
	return results, nil
}

func pairDistance(pts map[point.ID]*point.Point, c *classify.Classification, a, b classify.Label, approximate bool) (Pair, error) {
	if approximate {
		return CentroidPair(pts, c, a, b)
	}
	return ExactPair(pts, c, a, b)
}

// AttachOutliers finds candidate merge pairs for outlier reattachment:
// pairs where exactly one of the two labels has at most minSize members,
// under maxSquaredDistance, always using the exact pair routine (spec.md
// §4.7's outlier-attachment variant of the K-nearest-clusters scan).
func AttachOutliers(pts map[point.ID]*point.Point, c *classify.Classification, minSize int, maxSquaredDistance float64) ([]Pair, error) {
	labels := c.Labels()
	var small, large []classify.Label
	sizes := make(map[classify.Label]int, len(labels))
	for _, l := range labels {
		ids, err := c.Members(l)
		if err != nil {
			return nil, err
		}
		sizes[l] = len(ids)
		if len(ids) <= minSize {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	var results []Pair
	for _, sl := range small {
		for _, ll := range large {
			pair, err := ExactPair(pts, c, sl, ll)
			if err != nil {
				return nil, err
			}
			if pair.SquaredDistance <= maxSquaredDistance {
				results = append(results, pair)
			}
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].SquaredDistance < results[j].SquaredDistance })
	return results, nil
}

// Result pairs a query label with its nearest other label and the closest
// points achieving that distance.
type Result struct {
	Label classify.Label
	Pair  Pair
}

// FindClusterExhaustively finds query's nearest neighboring cluster by
// running ExactPair against every other label present in c. If query is
// the only label present, it returns a zero Result with ok=false rather
// than an error or panic (spec.md §4.7's single-cluster edge case).
func FindClusterExhaustively(pts map[point.ID]*point.Point, c *classify.Classification, query classify.Label) (Result, bool, error) {
	labels := c.Labels()
	var best Result
	found := false
	for _, l := range labels {
		if l == query {
			continue
		}
		pair, err := ExactPair(pts, c, query, l)
		if err != nil {
			return Result{}, false, err
		}
		if !found || pair.SquaredDistance < best.Pair.SquaredDistance {
			best = Result{Label: l, Pair: pair}
			found = true
		}
	}
	if !found {
		return Result{}, false, nil
	}
	return best, true, nil
}
