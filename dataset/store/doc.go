// Package store persists labeled sparse datasets in SQLite. Each dataset is
// a row in the datasets table and each example a row in the examples table
// holding its class, its position within the class, and its active indices
// encoded as a roaring bitmap BLOB. Loading restores the class and row
// order exactly, which the classifier relies on for index-to-label mapping.
package store
