// Package bruteforce provides a dense row matrix that answers distance
// queries by scanning every stored row. Rows are kept in insertion order and
// are never removed or modified.
package bruteforce
