// Package vector provides dense binary vector helpers used by the
// classifier:
//   - Densify / Sparsify between active index lists and 0/1 vectors
//   - Squared L2 and L2 distance functions
//   - DistanceFunction names resolving to a callable DistanceFunc
package vector
