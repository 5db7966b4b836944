package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/sparse-knn/dataset"
	"github.com/viant/sparse-knn/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// Register functions before any connection work.
	require.NoError(t, engine.RegisterFunctions())
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := New(context.Background(), db)
	require.NoError(t, err)
	return s
}

func sampleDataset(t *testing.T) dataset.Dataset {
	t.Helper()
	ds := dataset.New(3, 8)
	require.NoError(t, ds.Add(0))
	require.NoError(t, ds.Add(0, 1))
	require.NoError(t, ds.Add(1, 0, 1, 2, 3))
	require.NoError(t, ds.Add(1, 7, 2))
	require.NoError(t, ds.Add(1, 4))
	return ds
}

func TestNew_NilDB(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ds := sampleDataset(t)

	id, err := s.Save(ctx, "train", ds)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	loaded, err := s.Load(ctx, "train")
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, 8, loaded.InputSize())
	assert.Equal(t, ds.NumExamples(), loaded.NumExamples())

	for class := range ds {
		for i := 0; i < ds[class].NumRows(); i++ {
			want, err := ds[class].RowIndices(i)
			require.NoError(t, err)
			got, err := loaded[class].RowIndices(i)
			require.NoError(t, err)
			assert.Equalf(t, want, got, "class %d row %d", class, i)
		}
	}
	assert.Equal(t, 0, loaded[2].NumRows())
}

func TestStore_DuplicateName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Save(ctx, "train", sampleDataset(t))
	require.NoError(t, err)
	_, err = s.Save(ctx, "train", sampleDataset(t))
	assert.Error(t, err)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Load(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.Remove(ctx, "missing"), ErrNotFound))
}

func TestStore_ListStatsRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Save(ctx, "test", sampleDataset(t))
	require.NoError(t, err)
	_, err = s.Save(ctx, "alpha", dataset.New(1, 4))
	require.NoError(t, err)

	infos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "test", infos[1].Name)
	assert.Equal(t, 3, infos[1].NumClasses)
	assert.Equal(t, 8, infos[1].InputSize)

	stats, err := s.Stats(ctx, "test")
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, ClassStats{Class: 0, Examples: 2, MeanActive: 0.5}, stats[0])
	assert.Equal(t, 3, stats[1].Examples)
	assert.InDelta(t, 7.0/3.0, stats[1].MeanActive, 1e-9)
	assert.Equal(t, ClassStats{Class: 2}, stats[2])

	require.NoError(t, s.Remove(ctx, "test"))
	infos, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
}

func TestStore_SaveValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Save(ctx, "", sampleDataset(t))
	assert.Error(t, err)
	_, err = s.Save(ctx, "empty", dataset.Dataset{})
	assert.Error(t, err)
}
