package engine

import (
	"database/sql"
	"testing"

	"github.com/viant/sparse-knn/sparse"
)

func TestRegisterFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("RegisterFunctions failed: %v", err)
	}
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("second RegisterFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	aBlob, err := sparse.EncodeRow(sparse.NewRow(1, 3, 5, 7))
	if err != nil {
		t.Fatalf("EncodeRow a failed: %v", err)
	}
	var nnz int64
	if err := db.QueryRow(`SELECT sdr_nnz(?)`, aBlob).Scan(&nnz); err != nil {
		t.Fatalf("sdr_nnz query failed: %v", err)
	}
	if nnz != 4 {
		t.Fatalf("sdr_nnz(a) = %d, want 4", nnz)
	}

	var null sql.NullInt64
	if err := db.QueryRow(`SELECT sdr_nnz(NULL)`).Scan(&null); err != nil {
		t.Fatalf("sdr_nnz(NULL) query failed: %v", err)
	}
	if null.Valid {
		t.Fatalf("sdr_nnz(NULL) = %v, want NULL", null.Int64)
	}

	var bad int64
	if err := db.QueryRow(`SELECT sdr_nnz(42)`).Scan(&bad); err == nil {
		t.Fatalf("sdr_nnz(42) expected error, got %d", bad)
	}
}
