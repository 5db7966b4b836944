package engine

import (
	"database/sql/driver"
	"fmt"

	"github.com/viant/sparse-knn/sparse"
	sqlite "modernc.org/sqlite"
)

// RegisterFunctions registers sdr_nnz with the driver so it is available on
// connections opened after this call. Existing open connections will not
// see new functions.
//
//	sdr_nnz(row BLOB)  number of active indices of an encoded row
func RegisterFunctions() error {
	// Idempotent registration; the driver rejects duplicates which we ignore.
	_ = sqlite.RegisterDeterministicScalarFunction("sdr_nnz", 1, sdrNnzImpl)
	return nil
}

func sdrNnzImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sdr_nnz: expected 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case []byte:
		row, err := sparse.DecodeRow(v)
		if err != nil {
			return nil, err
		}
		return int64(row.NonZeros()), nil
	default:
		return nil, fmt.Errorf("sdr_nnz: unsupported argument type %T for row; want BLOB", v)
	}
}
