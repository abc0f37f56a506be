// Package density estimates local point density along a Hilbert-ordered
// sequence: a windowed k-th-nearest-neighbor radius, per-point neighbor
// counts and density ranks, a neighborhood-rank smoother that favors dense
// seed regions during agglomeration, and a bounded distance cache.
package density
