package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRow(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
	}{
		{"Empty", nil},
		{"Single", []uint32{0}},
		{"Pixels", []uint32{12, 13, 14, 40, 41, 783}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := EncodeRow(NewRow(tt.indices...))
			require.NoError(t, err)
			require.NotEmpty(t, blob)

			row, err := DecodeRow(blob)
			require.NoError(t, err)
			if len(tt.indices) == 0 {
				assert.Empty(t, row.Indices())
				return
			}
			assert.Equal(t, tt.indices, row.Indices())
		})
	}
}

func TestDecodeRow_Nil(t *testing.T) {
	row, err := DecodeRow(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, row.NonZeros())
}

func TestDecodeRow_Invalid(t *testing.T) {
	_, err := DecodeRow([]byte{1, 2, 3})
	assert.Error(t, err)
}
