// Package hilbert maps D-dimensional non-negative integer vectors to a 1-D
// Hilbert-curve index and back (Skilling's transposed-Gray-code algorithm),
// orders point sets by that index via a recursive, memory-bounded bucket
// sort, and estimates per-bit-depth grid coarseness to drive the sorter's
// recursion depth.
//
// Encoding (Index/Coords) is pure and deterministic: for a fixed bit width
// B, coords -> index -> coords is the identity (property P1), and reducing B
// is a consistent coarsening (property P2): two points that land on
// different indices at bit width B keep that relative order at any B' > B.
//
// Sort orders a point set by Hilbert index without ever materializing more
// than O(N/bucketCount) full-precision indices at once: it recursively
// buckets points using progressively finer bit depths, chosen by
// EstimateCoarseness so each recursion step's expected bucket size shrinks
// toward a target fraction of its parent bucket.
package hilbert
