// Package optimize searches the space of dimension permutations for the
// one whose Hilbert ordering yields the cleanest cluster-gap signal: the
// smallest cluster-gap estimator count excluding outliers. For low
// dimensionality it enumerates permutations exhaustively; for higher
// dimensionality it draws permutations by scrambling the current best. A
// bounded pool of workers evaluates candidates concurrently against a
// shared best-result tracker and a bounded top-K heap, optionally working
// from a subsample of the full point set for speed.
package optimize
