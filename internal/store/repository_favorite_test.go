package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggle(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	fav, err := storages.FavoriteRepository.Is(ctx, "A")
	require.NoError(t, err)
	assert.False(t, fav, "never-favorited code is not a favorite")

	require.NoError(t, storages.FavoriteRepository.Add(ctx, "A"))
	fav, err = storages.FavoriteRepository.Is(ctx, "A")
	require.NoError(t, err)
	assert.True(t, fav)

	require.NoError(t, storages.FavoriteRepository.Remove(ctx, "A"))
	fav, err = storages.FavoriteRepository.Is(ctx, "A")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, storages.FavoriteRepository.Add(ctx, "A"))
	require.NoError(t, storages.FavoriteRepository.Add(ctx, "A"))

	all, err := storages.FavoriteRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, all)
}

func TestFavoriteGetAll(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	for _, code := range []string{"C", "A", "B"} {
		require.NoError(t, storages.FavoriteRepository.Add(ctx, code))
	}

	all, err := storages.FavoriteRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, all)
}
