// Package sparse provides the sparse 0/1 row container used to hold
// examples: each row is the set of active column indices of a binary
// feature vector, backed by a roaring bitmap. Rows can be encoded into a
// portable BLOB for storage in SQLite.
package sparse
