// Package index defines the dense distance engine abstraction: an
// append-only store of fixed-length vectors that computes the distance from
// a query to every stored row in one call. Implementations in this module
// include a brute-force linear scan.
package index
