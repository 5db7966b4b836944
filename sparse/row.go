package sparse

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Row is the set of active column indices of a binary vector.
// A Row must not be mutated once it has been added to a Matrix.
type Row struct {
	bits *roaring.Bitmap
}

// NewRow creates a row with the given active indices. Duplicates collapse.
func NewRow(indices ...uint32) Row {
	return Row{bits: roaring.BitmapOf(indices...)}
}

func (r Row) bitmap() *roaring.Bitmap {
	if r.bits == nil {
		return roaring.New()
	}
	return r.bits
}

// Indices returns the active indices in ascending order.
func (r Row) Indices() []uint32 {
	if r.bits == nil {
		return []uint32{}
	}
	return r.bits.ToArray()
}

// NonZeros returns the number of active indices.
func (r Row) NonZeros() int {
	if r.bits == nil {
		return 0
	}
	return int(r.bits.GetCardinality())
}

// Max returns the largest active index; ok is false for an empty row.
func (r Row) Max() (uint32, bool) {
	if r.bits == nil || r.bits.IsEmpty() {
		return 0, false
	}
	return r.bits.Maximum(), true
}
