package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// EncodeRow encodes a row into a BLOB using the portable roaring format.
// An empty row encodes to a valid, non-nil blob.
func EncodeRow(row Row) ([]byte, error) {
	data, err := row.bitmap().ToBytes()
	if err != nil {
		return nil, fmt.Errorf("sparse: encode row: %w", err)
	}
	return data, nil
}

// DecodeRow decodes a BLOB produced by EncodeRow. A nil or empty blob
// decodes to an empty row.
func DecodeRow(b []byte) (Row, error) {
	bits := roaring.New()
	if len(b) == 0 {
		return Row{bits: bits}, nil
	}
	if err := bits.UnmarshalBinary(b); err != nil {
		return Row{}, fmt.Errorf("sparse: invalid row blob (%d bytes): %w", len(b), err)
	}
	return Row{bits: bits}, nil
}
