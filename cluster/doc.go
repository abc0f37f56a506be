// Package cluster is the thin public facade over the Hilbert-order
// clustering engine, mirroring the way the teacher's top-level
// `algorithms` package sits over its individual traversal/MST packages.
// It exposes the five programmatic operations of spec.md §6:
//
//	OptimizeOrder        -> permutation search (package optimize)
//	Classify              -> density-based agglomeration (package refine)
//	HilbertIndex/Coords   -> pure Hilbert transform (package hilbert)
//	SortByHilbert         -> ordering under a fixed permutation (package hilbert)
//	CompareClassifications -> B-Cubed similarity (package classify)
//
// Package cluster owns no algorithmic logic of its own beyond wiring: every
// component listed in spec.md §2 lives in its own package, and this package
// only sequences calls between them and translates the facade-level
// parameter structs into each package's own Params/Options type.
package cluster
