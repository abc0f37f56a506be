// Package point provides the immutable Point type, per-dimension coordinate
// balancing (Balancer), and dimension permutations used throughout the
// Hilbert-order clustering engine.
//
// A Point is a fixed-dimensionality, non-negative integer vector plus a
// stable identifier and two cached helpers (max coordinate, squared
// magnitude) so that downstream distance computations never re-scan the
// coordinate slice. Points are created once per run and reused across every
// permutation trial the optimizer tries; only the Balancer's derived
// transform and the resulting orderings are recomputed per trial.
//
// A Balancer estimates, per dimension, a (translate, shiftRight) pair that
// moves that dimension's median toward the midpoint of the representable
// range [0, 2^B) and optionally quantizes to fewer bits. It is built once
// from a reference point set (typically the whole input) and then applied
// to every point before Hilbert encoding.
//
// Permutation is a bijection on {0,...,D-1} used to reorder dimensions
// before balancing/encoding; the optimizer (package optimize) searches over
// permutations to find the orientation that yields the tightest apparent
// clustering.
package point
