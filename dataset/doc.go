// Package dataset defines a labeled dataset partitioned by class: collection
// i holds every example of class i, so labels are positional. It also reads
// datasets from a line-oriented text format. Durable storage lives in the
// store subpackage.
package dataset
