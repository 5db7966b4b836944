package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/viant/sparse-knn/dataset"
	"github.com/viant/sparse-knn/sparse"
)

// ErrNotFound is returned when a named dataset does not exist.
var ErrNotFound = errors.New("store: dataset not found")

// Info describes a stored dataset.
type Info struct {
	ID         string
	Name       string
	NumClasses int
	InputSize  int
}

// ClassStats summarises one class of a stored dataset.
type ClassStats struct {
	Class    int
	Examples int
	// MeanActive is the average number of active indices per example.
	MeanActive float64
}

// Store is a SQLite-backed dataset store.
type Store struct {
	db *sql.DB
}

// New creates a Store over db and ensures its schema exists.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save stores ds under name and returns its generated id. An existing
// dataset with the same name is an error.
func (s *Store) Save(ctx context.Context, name string, ds dataset.Dataset) (string, error) {
	if name == "" {
		return "", fmt.Errorf("store: dataset name is empty")
	}
	inputSize := ds.InputSize()
	if inputSize <= 0 {
		return "", fmt.Errorf("store: dataset %q has no input size", name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `INSERT INTO datasets(id, name, num_classes, input_size) VALUES(?, ?, ?, ?)`,
		id, name, len(ds), inputSize); err != nil {
		return "", fmt.Errorf("store: save dataset %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO examples(dataset_id, class, row, nnz, indices) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for class, rows := range ds {
		if rows == nil {
			continue
		}
		if rows.NumCols() != inputSize {
			return "", fmt.Errorf("store: class %d has %d columns, want %d", class, rows.NumCols(), inputSize)
		}
		for i := 0; i < rows.NumRows(); i++ {
			row, err := rows.Row(i)
			if err != nil {
				return "", err
			}
			blob, err := sparse.EncodeRow(row)
			if err != nil {
				return "", err
			}
			if _, err := stmt.ExecContext(ctx, id, class, i, row.NonZeros(), blob); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Info returns the metadata of the named dataset.
func (s *Store) Info(ctx context.Context, name string) (*Info, error) {
	info := &Info{Name: name}
	err := s.db.QueryRowContext(ctx, `SELECT id, num_classes, input_size FROM datasets WHERE name = ?`, name).
		Scan(&info.ID, &info.NumClasses, &info.InputSize)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Load restores the named dataset with its class and row order.
func (s *Store) Load(ctx context.Context, name string) (dataset.Dataset, error) {
	info, err := s.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	ds := dataset.New(info.NumClasses, info.InputSize)

	rows, err := s.db.QueryContext(ctx, `SELECT class, indices FROM examples WHERE dataset_id = ? ORDER BY class, row`, info.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var class int
		var blob []byte
		if err := rows.Scan(&class, &blob); err != nil {
			return nil, err
		}
		row, err := sparse.DecodeRow(blob)
		if err != nil {
			return nil, err
		}
		collection, err := ds.Class(class)
		if err != nil {
			return nil, fmt.Errorf("store: dataset %q: %w", name, err)
		}
		if err := collection.Append(row); err != nil {
			return nil, fmt.Errorf("store: dataset %q class %d: %w", name, class, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// List returns all stored datasets ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, num_classes, input_size FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ID, &info.Name, &info.NumClasses, &info.InputSize); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns per-class example counts and mean active indices. Classes
// without examples are reported with zero counts. Callers must have
// registered the engine SQL functions before opening db.
func (s *Store) Stats(ctx context.Context, name string) ([]ClassStats, error) {
	info, err := s.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]ClassStats, info.NumClasses)
	for i := range out {
		out[i].Class = i
	}

	rows, err := s.db.QueryContext(ctx, `SELECT class, COUNT(*), AVG(sdr_nnz(indices))
FROM examples WHERE dataset_id = ? GROUP BY class ORDER BY class`, info.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st ClassStats
		if err := rows.Scan(&st.Class, &st.Examples, &st.MeanActive); err != nil {
			return nil, err
		}
		if st.Class < 0 || st.Class >= len(out) {
			return nil, fmt.Errorf("store: dataset %q has class %d outside [0, %d)", name, st.Class, len(out))
		}
		out[st.Class] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes the named dataset and its examples.
func (s *Store) Remove(ctx context.Context, name string) error {
	info, err := s.Info(ctx, name)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM examples WHERE dataset_id = ?`, info.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, info.ID); err != nil {
		return err
	}
	return tx.Commit()
}
