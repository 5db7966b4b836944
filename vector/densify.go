package vector

import "fmt"

// DimensionMismatchError reports an active index that does not fit a dense
// vector of the given size.
type DimensionMismatchError struct {
	Index uint32
	Size  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: index %d exceeds input size %d", e.Index, e.Size)
}

// Densify converts a list of active indices into a dense 0/1 vector of the
// given size. Positions not listed are 0.
func Densify(indices []uint32, size int) ([]float32, error) {
	if size <= 0 {
		return nil, fmt.Errorf("vector: invalid dense size %d", size)
	}
	dense := make([]float32, size)
	for _, idx := range indices {
		if int64(idx) >= int64(size) {
			return nil, &DimensionMismatchError{Index: idx, Size: size}
		}
		dense[idx] = 1
	}
	return dense, nil
}

// Sparsify returns the positions of the non-zero entries of a dense vector.
func Sparsify(dense []float32) []uint32 {
	indices := make([]uint32, 0)
	for i, v := range dense {
		if v != 0 {
			indices = append(indices, uint32(i))
		}
	}
	return indices
}
