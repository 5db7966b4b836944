package dataset

import (
	"fmt"

	"github.com/viant/sparse-knn/sparse"
)

// Dataset is an ordered sequence of per-class example collections.
type Dataset []*sparse.Matrix

// New creates a dataset with numClasses empty collections of inputSize
// columns.
func New(numClasses, inputSize int) Dataset {
	ds := make(Dataset, numClasses)
	for i := range ds {
		ds[i] = sparse.NewMatrix(inputSize)
	}
	return ds
}

// Class returns the collection of class i.
func (d Dataset) Class(i int) (*sparse.Matrix, error) {
	if i < 0 || i >= len(d) {
		return nil, fmt.Errorf("dataset: class %d out of range [0, %d)", i, len(d))
	}
	if d[i] == nil {
		return nil, fmt.Errorf("dataset: class %d has no collection", i)
	}
	return d[i], nil
}

// Add appends an example with the given active indices to class i.
func (d Dataset) Add(class int, indices ...uint32) error {
	rows, err := d.Class(class)
	if err != nil {
		return err
	}
	return rows.AddRow(indices...)
}

// NumExamples returns the total number of examples over all classes.
func (d Dataset) NumExamples() int {
	n := 0
	for _, rows := range d {
		if rows != nil {
			n += rows.NumRows()
		}
	}
	return n
}

// InputSize returns the column count of the first non-nil collection.
func (d Dataset) InputSize() int {
	for _, rows := range d {
		if rows != nil {
			return rows.NumCols()
		}
	}
	return 0
}
