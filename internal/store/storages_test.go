package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

func TestMigrateConcurrentSingleFlight(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.DB{Path: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = db.Migrate()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err, "every concurrent caller observes a ready store")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	_, err := storages.SettingsRepository.Get(ctx, SettingTheme)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, storages.SettingsRepository.Put(ctx, SettingTheme, "dark"))
	require.NoError(t, storages.SettingsRepository.Put(ctx, SettingTheme, "light"))

	value, err := storages.SettingsRepository.Get(ctx, SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestClearAllEmptiesEveryCollection(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	require.NoError(t, storages.ProductRepository.Put(ctx, testProduct("111", "P", 100)))
	require.NoError(t, storages.FavoriteRepository.Add(ctx, "111"))
	require.NoError(t, storages.MealRepository.Put(ctx, models.Meal{ID: "meal-1", Name: "M"}))
	require.NoError(t, storages.WeightRepository.Put(ctx, models.WeightEntry{Date: "2026-01-01", Weight: 70}))
	require.NoError(t, storages.DailyLogRepository.Put(ctx, models.NewDailyLog("2026-01-01")))
	require.NoError(t, storages.SettingsRepository.Put(ctx, SettingLanguage, "en"))

	require.NoError(t, storages.ClearAll(ctx))

	products, err := storages.ProductRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	favorites, err := storages.FavoriteRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	meals, err := storages.MealRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)

	weights, err := storages.WeightRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, weights)

	logs, err := storages.DailyLogRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = storages.SettingsRepository.Get(ctx, SettingLanguage)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	// the schema survives a wipe: the store is immediately writable again
	assert.NoError(t, storages.FavoriteRepository.Add(ctx, "222"))
}
