package classifier

import (
	"errors"
	"fmt"

	"github.com/viant/sparse-knn/vector"
)

var (
	// ErrEmptyStore is returned when classifying before any training.
	ErrEmptyStore = errors.New("classifier: training store is empty")

	// ErrInvalidInputSize is returned by New when inputSize is not positive.
	ErrInvalidInputSize = errors.New("classifier: input size must be positive")
)

// OutOfRangeError reports an index past the end of a dataset, a class
// collection, or the training store.
type OutOfRangeError struct {
	What  string
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("classifier: %s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

// DimensionMismatchError reports an active index >= the input size.
type DimensionMismatchError = vector.DimensionMismatchError
