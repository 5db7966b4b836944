package bruteforce

import (
	"fmt"

	"github.com/viant/sparse-knn/index"
	"github.com/viant/sparse-knn/vector"
)

// Matrix is a brute-force dense row store.
type Matrix struct {
	cols     int
	rows     [][]float32
	distance vector.DistanceFunction
	fn       vector.DistanceFunc
}

// Option configures a Matrix.
type Option func(*Matrix)

// WithDistance selects the distance metric; unknown names fall back to
// squared L2.
func WithDistance(d vector.DistanceFunction) Option {
	return func(m *Matrix) { m.distance = d }
}

// New creates an empty matrix with the given row length.
func New(cols int, opts ...Option) (*Matrix, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("bruteforce: invalid column count %d", cols)
	}
	m := &Matrix{cols: cols, distance: vector.DistanceFunctionSquaredL2}
	for _, opt := range opts {
		opt(m)
	}
	m.fn = m.distance.Function()
	if m.fn == nil {
		m.distance = vector.DistanceFunctionSquaredL2
		m.fn = vector.SquaredL2
	}
	return m, nil
}

// Distance returns the configured metric.
func (m *Matrix) Distance() vector.DistanceFunction { return m.distance }

// NumRows returns the number of stored rows.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the row length.
func (m *Matrix) NumCols() int { return m.cols }

// AddRow appends a copy of row.
func (m *Matrix) AddRow(row []float32) error {
	if len(row) != m.cols {
		return fmt.Errorf("bruteforce: row length %d != cols %d", len(row), m.cols)
	}
	m.rows = append(m.rows, append([]float32(nil), row...))
	return nil
}

// Row returns a copy of the stored row i.
func (m *Matrix) Row(i int) ([]float32, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("bruteforce: row %d out of range [0, %d)", i, len(m.rows))
	}
	return append([]float32(nil), m.rows[i]...), nil
}

// Distances scans all rows and returns their distance to query.
func (m *Matrix) Distances(query []float32) ([]float64, error) {
	if len(query) != m.cols {
		return nil, fmt.Errorf("bruteforce: query dim %d != cols %d", len(query), m.cols)
	}
	out := make([]float64, len(m.rows))
	for j, row := range m.rows {
		d, err := m.fn(query, row)
		if err != nil {
			return nil, err
		}
		out[j] = d
	}
	return out, nil
}

// Ensure Matrix satisfies the Engine interface.
var _ index.Engine = (*Matrix)(nil)
