package index

// Engine stores dense rows and answers bulk distance queries.
type Engine interface {
	// AddRow appends a row. Its length must equal NumCols.
	AddRow(row []float32) error

	// NumRows returns the number of stored rows.
	NumRows() int

	// Row returns a copy of stored row i.
	Row(i int) ([]float32, error)

	// NumCols returns the fixed row length.
	NumCols() int

	// Distances returns the distance from query to every stored row, aligned
	// with row index. Smaller means closer.
	Distances(query []float32) ([]float64, error)
}
