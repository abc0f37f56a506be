// Package closest locates minimal-distance pairs between clusters: exact
// and centroid-approximate closest pairs, K-nearest-neighboring clusters
// under a distance cap, and outlier-attachment candidate pairs.
package closest
