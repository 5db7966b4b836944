package sparse

import "fmt"

// DimensionError reports a column index outside a matrix's column range.
type DimensionError struct {
	Index uint32
	Cols  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("sparse: column index %d out of range [0, %d)", e.Index, e.Cols)
}

// RowRangeError reports a row access outside the stored rows.
type RowRangeError struct {
	Row  int
	Rows int
}

func (e *RowRangeError) Error() string {
	return fmt.Sprintf("sparse: row %d out of range [0, %d)", e.Row, e.Rows)
}

// Matrix is an append-only sparse 0/1 matrix with a fixed column count.
type Matrix struct {
	cols int
	rows []Row
}

// NewMatrix creates an empty matrix with cols columns.
func NewMatrix(cols int) *Matrix {
	return &Matrix{cols: cols}
}

// NumRows returns the number of stored rows.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the column count.
func (m *Matrix) NumCols() int { return m.cols }

// AddRow appends a row with the given active indices.
func (m *Matrix) AddRow(indices ...uint32) error {
	return m.Append(NewRow(indices...))
}

// Append appends an existing row after checking its column range.
func (m *Matrix) Append(row Row) error {
	if top, ok := row.Max(); ok && int64(top) >= int64(m.cols) {
		return &DimensionError{Index: top, Cols: m.cols}
	}
	if row.bits == nil {
		row = Row{bits: row.bitmap()}
	}
	m.rows = append(m.rows, row)
	return nil
}

// Row returns the row at index i.
func (m *Matrix) Row(i int) (Row, error) {
	if i < 0 || i >= len(m.rows) {
		return Row{}, &RowRangeError{Row: i, Rows: len(m.rows)}
	}
	return m.rows[i], nil
}

// NonZerosRow returns the number of active indices in row i.
func (m *Matrix) NonZerosRow(i int) (int, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	return row.NonZeros(), nil
}

// RowIndices returns the active indices of row i in ascending order.
func (m *Matrix) RowIndices(i int) ([]uint32, error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	return row.Indices(), nil
}
