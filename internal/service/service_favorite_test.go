package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Toggle(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.storages)
	ctx := context.Background()

	favorited, err := svc.Toggle(ctx, "111")
	require.NoError(t, err)
	assert.True(t, favorited)

	state, err := svc.IsFavorite(ctx, "111")
	require.NoError(t, err)
	assert.True(t, state)

	favorited, err = svc.Toggle(ctx, "111")
	require.NoError(t, err)
	assert.False(t, favorited)

	state, err = svc.IsFavorite(ctx, "111")
	require.NoError(t, err)
	assert.False(t, state)
}

func TestFavoriteService_GetFavorites(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.storages)
	ctx := context.Background()

	for _, code := range []string{"2", "1", "3"} {
		_, err := svc.Toggle(ctx, code)
		require.NoError(t, err)
	}

	codes, err := svc.GetFavorites(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, codes)
}

func TestFavoriteService_StoreFailure(t *testing.T) {
	env := newTestEnv()
	env.favorites.err = errors.New("db locked")
	svc := NewFavoriteService(env.storages)

	_, err := svc.Toggle(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check favorite state")
}
