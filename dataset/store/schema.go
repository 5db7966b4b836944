package store

import (
	"context"
	"database/sql"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS datasets (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    num_classes INTEGER NOT NULL,
    input_size  INTEGER NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS examples (
    dataset_id TEXT NOT NULL,
    class      INTEGER NOT NULL,
    row        INTEGER NOT NULL,
    nnz        INTEGER NOT NULL,
    indices    BLOB NOT NULL,
    PRIMARY KEY(dataset_id, class, row)
);`,
}

// EnsureSchema creates the datasets and examples tables in the provided
// database if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
