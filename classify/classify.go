// SPDX-License-Identifier: MIT
package classify

import (
	"sort"

	"github.com/dmaksimov/hilbertcluster/point"
)

// Label identifies a cluster within a Classification. Labels carry no
// meaning beyond grouping; two Classifications with the same partition but
// differently numbered labels are considered equivalent by Equal.
type Label int64

// Unclustered is the label reserved for points that a caller has
// explicitly marked as not belonging to any cluster (spec.md's
// "Unclustered" report for data with no discoverable structure).
const Unclustered Label = -1

// Classification is a bidirectional map between point.ID and Label. Every
// point has exactly one label; every label present in the map has at least
// one member; labels that lose their last member are removed eagerly.
type Classification struct {
	pointToLabel map[point.ID]Label
	labelToPoint map[Label]map[point.ID]struct{}
}

// New returns an empty Classification.
func New() *Classification {
	return &Classification{
		pointToLabel: make(map[point.ID]Label),
		labelToPoint: make(map[Label]map[point.ID]struct{}),
	}
}

// Add assigns id to label, replacing any prior label id held. If id was
// the last member of its previous label, that label is removed.
func (c *Classification) Add(id point.ID, label Label) {
	if prev, ok := c.pointToLabel[id]; ok {
		if prev == label {
			return
		}
		c.detach(id, prev)
	}
	c.pointToLabel[id] = label
	members, ok := c.labelToPoint[label]
	if !ok {
		members = make(map[point.ID]struct{})
		c.labelToPoint[label] = members
	}
	members[id] = struct{}{}
}

// Remove drops id from the classification entirely. Returns
// ErrUnknownPoint if id held no label.
func (c *Classification) Remove(id point.ID) error {
	label, ok := c.pointToLabel[id]
	if !ok {
		return ErrUnknownPoint
	}
	delete(c.pointToLabel, id)
	c.detach(id, label)
	return nil
}

// detach removes id from label's member set, eagerly deleting the label
// entry if it becomes empty.
func (c *Classification) detach(id point.ID, label Label) {
	members := c.labelToPoint[label]
	delete(members, id)
	if len(members) == 0 {
		delete(c.labelToPoint, label)
	}
}

// Merge reassigns every member of each label in sources to target, then
// removes the (now empty) source labels. target may itself appear in
// sources; it is skipped. Unknown source labels are silently ignored, so
// merges are idempotent and safe to apply in any order (spec.md's P5
// merge-order invariance).
func (c *Classification) Merge(target Label, sources []Label) {
	for _, src := range sources {
		if src == target {
			continue
		}
		members := c.labelToPoint[src]
		if len(members) == 0 {
			continue
		}
		ids := make([]point.ID, 0, len(members))
		for id := range members {
			ids = append(ids, id)
		}
		for _, id := range ids {
			c.Add(id, target)
		}
	}
}

// Label returns the label currently held by id and whether id is known.
func (c *Classification) Label(id point.ID) (Label, bool) {
	l, ok := c.pointToLabel[id]
	return l, ok
}

// Labels returns the distinct labels currently in use, sorted ascending.
func (c *Classification) Labels() []Label {
	labels := make([]Label, 0, len(c.labelToPoint))
	for l := range c.labelToPoint {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Members returns the point ids currently holding label, sorted ascending.
// Returns ErrUnknownLabel if label has no members.
func (c *Classification) Members(label Label) ([]point.ID, error) {
	set, ok := c.labelToPoint[label]
	if !ok {
		return nil, ErrUnknownLabel
	}
	ids := make([]point.ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Size returns the number of points currently classified.
func (c *Classification) Size() int { return len(c.pointToLabel) }
