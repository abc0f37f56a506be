// Package classify maintains a bidirectional mapping between points and
// cluster labels, with eager invariant maintenance (every point has
// exactly one label, every label has at least one member, empty labels are
// removed), partition equality independent of label naming, and B-Cubed
// precision/recall/F-measure comparison between two classifications of the
// same point set.
package classify
