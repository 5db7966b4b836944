package bruteforce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/sparse-knn/vector"
)

func TestNew_InvalidCols(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}

func TestMatrix_Distances(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	assert.Equal(t, vector.DistanceFunctionSquaredL2, m.Distance())

	require.NoError(t, m.AddRow([]float32{0, 0}))
	require.NoError(t, m.AddRow([]float32{3, 4}))
	require.NoError(t, m.AddRow([]float32{1, 0}))

	got, err := m.Distances([]float32{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 1}, got)
}

func TestMatrix_L2Distances(t *testing.T) {
	m, err := New(2, WithDistance(vector.DistanceFunctionL2))
	require.NoError(t, err)
	require.NoError(t, m.AddRow([]float32{3, 4}))

	got, err := m.Distances([]float32{0, 0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 5, got[0], 1e-6)
}

func TestMatrix_UnknownDistanceFallsBack(t *testing.T) {
	m, err := New(2, WithDistance("cosine"))
	require.NoError(t, err)
	assert.Equal(t, vector.DistanceFunctionSquaredL2, m.Distance())
}

func TestMatrix_Empty(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	got, err := m.Distances([]float32{1, 1, 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatrix_DimensionChecks(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	assert.Error(t, m.AddRow([]float32{1, 2}))
	assert.Equal(t, 0, m.NumRows())

	require.NoError(t, m.AddRow([]float32{1, 2, 3}))
	_, err = m.Distances([]float32{1})
	assert.Error(t, err)
}

func TestMatrix_RowIsCopied(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	src := []float32{1, 1}
	require.NoError(t, m.AddRow(src))
	src[0] = math.MaxFloat32

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, row)
	row[1] = 9

	again, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, again)

	_, err = m.Row(1)
	assert.Error(t, err)
}
