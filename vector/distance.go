package vector

import (
	"fmt"

	"github.com/viant/vec/search"
)

// SquaredL2 computes the squared Euclidean distance between two vectors. It
// returns an error if the vectors have different lengths.
func SquaredL2(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: squared L2 dimension mismatch: %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum, nil
}

// L2Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func L2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: L2 distance dimension mismatch: %d vs %d", len(a), len(b))
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

// DistanceFunc computes the distance between two equally sized vectors.
type DistanceFunc func(a, b []float32) (float64, error)

// DistanceFunction names a supported distance metric.
type DistanceFunction string

const (
	DistanceFunctionSquaredL2 DistanceFunction = "squared_l2"
	DistanceFunctionL2        DistanceFunction = "l2"
)

// Function resolves the callable distance implementation, or nil when the
// name is unknown.
func (d DistanceFunction) Function() DistanceFunc {
	switch d {
	case DistanceFunctionSquaredL2, "":
		return SquaredL2
	case DistanceFunctionL2, "euclidean":
		return L2Distance
	default:
		return nil
	}
}

// ParseDistanceFunction validates a distance name.
func ParseDistanceFunction(name string) (DistanceFunction, error) {
	d := DistanceFunction(name)
	if d.Function() == nil {
		return "", fmt.Errorf("vector: unsupported distance function %q", name)
	}
	if d == "" {
		return DistanceFunctionSquaredL2, nil
	}
	if d == "euclidean" {
		return DistanceFunctionL2, nil
	}
	return d, nil
}
