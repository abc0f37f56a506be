// Package gapstat estimates, from a sequence of consecutive squared
// distances along a Hilbert-ordered point sequence, an upper bound on the
// number of natural clusters and the squared-distance threshold at which
// points should be considered part of the same cluster.
package gapstat
