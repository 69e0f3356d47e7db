package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/models"
)

func TestWeightGetAllSortedAscending(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	// deliberately inserted out of order
	for _, entry := range []models.WeightEntry{
		{Date: "2026-03-10", Weight: 71.2},
		{Date: "2026-01-05", Weight: 73.0},
		{Date: "2026-02-20", Weight: 72.1},
	} {
		require.NoError(t, storages.WeightRepository.Put(ctx, entry))
	}

	all, err := storages.WeightRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-01-05", all[0].Date)
	assert.Equal(t, "2026-02-20", all[1].Date)
	assert.Equal(t, "2026-03-10", all[2].Date)
}

func TestWeightPutOverwritesSameDate(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, storages.WeightRepository.Put(ctx, models.WeightEntry{Date: "2026-01-05", Weight: 73.0}))
	require.NoError(t, storages.WeightRepository.Put(ctx, models.WeightEntry{Date: "2026-01-05", Weight: 72.5}))

	got, err := storages.WeightRepository.Get(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, 72.5, got.Weight)

	all, err := storages.WeightRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "one entry per date")
}

func TestWeightGetRange(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	for _, entry := range []models.WeightEntry{
		{Date: "2026-01-01", Weight: 74.0},
		{Date: "2026-02-01", Weight: 73.0},
		{Date: "2026-03-01", Weight: 72.0},
		{Date: "2026-04-01", Weight: 71.0},
	} {
		require.NoError(t, storages.WeightRepository.Put(ctx, entry))
	}

	within, err := storages.WeightRepository.GetRange(ctx, "2026-02-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, within, 2)
	assert.Equal(t, "2026-02-01", within[0].Date)
	assert.Equal(t, "2026-03-01", within[1].Date)
}

func TestWeightDeleteAndAbsent(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, storages.WeightRepository.Put(ctx, models.WeightEntry{Date: "2026-01-05", Weight: 73.0}))
	require.NoError(t, storages.WeightRepository.Delete(ctx, "2026-01-05"))

	_, err := storages.WeightRepository.Get(ctx, "2026-01-05")
	assert.ErrorIs(t, err, ErrWeightEntryNotFound)
}
