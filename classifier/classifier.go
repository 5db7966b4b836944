package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/sparse-knn/dataset"
	"github.com/viant/sparse-knn/index"
	"github.com/viant/sparse-knn/index/bruteforce"
	"github.com/viant/sparse-knn/sparse"
	"github.com/viant/sparse-knn/vector"
)

// Classifier is a 1-NN classifier over binary vectors of a fixed length.
// It is not safe for concurrent use.
type Classifier struct {
	numClasses int
	inputSize  int
	store      index.Engine
	labels     []int
	logger     *slog.Logger
}

// Prediction is the outcome of classifying one example.
type Prediction struct {
	Class    int
	Row      int
	Distance float64
}

// New creates a classifier with an empty training store of inputSize
// columns. numClasses is not validated; TrainDataset trains classes
// 0..numClasses-1.
func New(numClasses, inputSize int, opts ...Option) (*Classifier, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInputSize, inputSize)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	store, err := bruteforce.New(inputSize, bruteforce.WithDistance(o.distance))
	if err != nil {
		return nil, err
	}
	c := &Classifier{
		numClasses: numClasses,
		inputSize:  inputSize,
		store:      store,
		logger:     o.logger,
	}
	c.logger.Info("knn store created", "cols", store.NumCols(), "classes", numClasses, "distance", string(store.Distance()))
	return c, nil
}

// NumClasses returns the number of classes trained by TrainDataset.
func (c *Classifier) NumClasses() int { return c.numClasses }

// InputSize returns the feature vector length.
func (c *Classifier) InputSize() int { return c.inputSize }

// NumRows returns the number of stored training rows.
func (c *Classifier) NumRows() int { return c.store.NumRows() }

// Labels returns a copy of the stored labels in row order.
func (c *Classifier) Labels() []int { return append([]int(nil), c.labels...) }

// TrainDataset trains every class 0..numClasses-1 from ds, class by class and
// row by row. Collections past numClasses-1 are ignored. Every class is
// validated and densified before the first row is stored, so a failure
// leaves the store unchanged.
func (c *Classifier) TrainDataset(ds dataset.Dataset) error {
	if len(ds) < c.numClasses {
		return &OutOfRangeError{What: "class", Index: c.numClasses - 1, Len: len(ds)}
	}
	dense := make([][][]float32, c.numClasses)
	for class := range dense {
		rows, err := c.densifyClass(class, ds)
		if err != nil {
			return err
		}
		dense[class] = rows
	}
	for class, rows := range dense {
		if err := c.appendClass(class, rows); err != nil {
			return err
		}
	}
	return nil
}

// TrainClass adds every row of ds[class] to the store tagged with class.
// A failure leaves the store unchanged.
func (c *Classifier) TrainClass(class int, ds dataset.Dataset) error {
	dense, err := c.densifyClass(class, ds)
	if err != nil {
		return err
	}
	return c.appendClass(class, dense)
}

func (c *Classifier) densifyClass(class int, ds dataset.Dataset) ([][]float32, error) {
	if class < 0 || class >= len(ds) {
		return nil, &OutOfRangeError{What: "class", Index: class, Len: len(ds)}
	}
	rows, err := ds.Class(class)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	dense := make([][]float32, rows.NumRows())
	for i := range dense {
		if dense[i], err = c.densifyRow(rows, i); err != nil {
			return nil, fmt.Errorf("classifier: class %d row %d: %w", class, i, err)
		}
	}
	return dense, nil
}

func (c *Classifier) appendClass(class int, dense [][]float32) error {
	for _, row := range dense {
		if err := c.store.AddRow(row); err != nil {
			return err
		}
		c.labels = append(c.labels, class)
	}
	c.logger.Info("trained category", "category", class, "rows", len(c.labels), "storeRows", c.store.NumRows())
	if c.logger.Enabled(context.Background(), slog.LevelDebug) && c.store.NumRows() > 0 {
		c.logRow(c.store.NumRows() - 1)
	}
	return nil
}

// logRow dumps the active indices of stored row i at Debug level.
func (c *Classifier) logRow(i int) {
	row, err := c.store.Row(i)
	if err != nil {
		c.logger.Debug("stored row unavailable", "row", i, "error", err)
		return
	}
	indices := vector.Sparsify(row)
	c.logger.Debug("stored row", "row", i, "label", c.labels[i], "nnz", len(indices), "indices", indices)
}

// ClassifyExample classifies row of the class collection rows. k is ignored;
// the result is always the label of the single nearest stored row.
func (c *Classifier) ClassifyExample(row, k int, rows *sparse.Matrix) (int, error) {
	if rows == nil {
		return 0, &OutOfRangeError{What: "row", Index: row, Len: 0}
	}
	query, err := c.densifyRow(rows, row)
	if err != nil {
		return 0, err
	}
	p, err := c.nearest(query)
	if err != nil {
		return 0, err
	}
	c.logger.Debug("classified example", "row", row, "k", k, "class", p.Class, "distance", p.Distance)
	return p.Class, nil
}

// Classify classifies a single example and reports the winning row.
func (c *Classifier) Classify(example sparse.Row) (Prediction, error) {
	query, err := vector.Densify(example.Indices(), c.inputSize)
	if err != nil {
		return Prediction{}, err
	}
	return c.nearest(query)
}

// EvaluateDataset classifies every example of every collection of ds and
// compares the result with the collection index. k is ignored.
func (c *Classifier) EvaluateDataset(k int, ds dataset.Dataset) (*Report, error) {
	report := &Report{Classes: make([]ClassAccuracy, 0, len(ds))}
	for class := range ds {
		rows, err := ds.Class(class)
		if err != nil {
			return nil, err
		}
		acc := ClassAccuracy{Class: class, Examples: rows.NumRows()}
		for p := 0; p < rows.NumRows(); p++ {
			best, err := c.ClassifyExample(p, k, rows)
			if err != nil {
				return nil, fmt.Errorf("classifier: evaluate class %d row %d: %w", class, p, err)
			}
			if best == class {
				acc.Correct++
			}
		}
		report.Classes = append(report.Classes, acc)
		report.Correct += acc.Correct
		report.Total += acc.Examples
		if value, ok := acc.Accuracy(); ok {
			c.logger.Info("category accuracy", "category", class, "examples", acc.Examples, "pctCorrect", value)
		} else {
			c.logger.Info("category accuracy", "category", class, "examples", 0, "pctCorrect", "no data")
		}
	}
	c.logger.Info("overall accuracy", "percent", report.OverallPercent(), "correct", report.Correct, "total", report.Total)
	return report, nil
}

func (c *Classifier) densifyRow(rows *sparse.Matrix, row int) ([]float32, error) {
	indices, err := rows.RowIndices(row)
	if err != nil {
		var rangeErr *sparse.RowRangeError
		if errors.As(err, &rangeErr) {
			return nil, &OutOfRangeError{What: "row", Index: row, Len: rangeErr.Rows}
		}
		return nil, err
	}
	return vector.Densify(indices, c.inputSize)
}

// nearest returns the stored row with the strictly smallest distance; the
// earliest row wins ties.
func (c *Classifier) nearest(query []float32) (Prediction, error) {
	if c.store.NumRows() == 0 {
		return Prediction{}, ErrEmptyStore
	}
	distances, err := c.store.Distances(query)
	if err != nil {
		return Prediction{}, err
	}
	if len(distances) != len(c.labels) {
		return Prediction{}, fmt.Errorf("classifier: store has %d rows but %d labels", len(distances), len(c.labels))
	}
	best := Prediction{Class: c.labels[0], Row: 0, Distance: distances[0]}
	for i, d := range distances {
		if d < best.Distance {
			best = Prediction{Class: c.labels[i], Row: i, Distance: d}
		}
	}
	return best, nil
}
