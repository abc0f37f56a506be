// Package refine performs the density-based agglomeration pass (spec.md
// §4.10, component C10): given a Hilbert-ordered point sequence, a density
// ranking, and a merge squared-distance threshold, it merges adjacent
// clusters along dense bridges under a size cap, then reattaches any
// cluster still smaller than the cap to its nearest large neighbor.
package refine
