package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/models"
)

func TestCatalogService_GetProduct_CacheHitSkipsRemote(t *testing.T) {
	env := newTestEnv()
	cached := snapshot("111", "Cached", 100)
	env.products.products["111"] = cached
	svc := NewCatalogService(env.storages, env.provider)

	product, err := svc.GetProduct(context.Background(), "111")
	require.NoError(t, err)

	assert.Equal(t, cached, product)
	assert.Empty(t, env.provider.lookups)
}

func TestCatalogService_GetProduct_CacheMissFetchesAndCaches(t *testing.T) {
	env := newTestEnv()
	remote := snapshot("222", "Remote", 250)
	env.provider.products["222"] = remote
	svc := NewCatalogService(env.storages, env.provider)

	product, err := svc.GetProduct(context.Background(), "222")
	require.NoError(t, err)

	assert.Equal(t, remote, product)
	assert.Equal(t, []string{"222"}, env.provider.lookups)
	assert.Equal(t, remote, env.products.products["222"], "fetched product lands in the cache")
}

func TestCatalogService_GetProduct_RemoteFailure(t *testing.T) {
	env := newTestEnv()
	env.provider.lookupErr = errors.New("api down")
	svc := NewCatalogService(env.storages, env.provider)

	_, err := svc.GetProduct(context.Background(), "333")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote barcode lookup")
}

func TestCatalogService_SearchProducts_RemoteFirst(t *testing.T) {
	env := newTestEnv()
	env.provider.searchResults = []models.Product{snapshot("1", "Oat Drink", 44)}
	svc := NewCatalogService(env.storages, env.provider)

	results, err := svc.SearchProducts(context.Background(), "oat", 1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Oat Drink", results[0].Name)
}

func TestCatalogService_SearchProducts_FallsBackToCacheOffline(t *testing.T) {
	env := newTestEnv()
	env.provider.searchErr = errors.New("no network")
	env.products.products["1"] = snapshot("1", "Oat flakes", 379)
	env.products.products["2"] = snapshot("2", "Rice", 130)
	svc := NewCatalogService(env.storages, env.provider)

	results, err := svc.SearchProducts(context.Background(), "oat", 1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Oat flakes", results[0].Name)

	// the cache is not paginated, later pages come back empty
	results, err = svc.SearchProducts(context.Background(), "oat", 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCatalogService_SaveProduct_MarksUserEdited(t *testing.T) {
	env := newTestEnv()
	svc := NewCatalogService(env.storages, env.provider)

	require.NoError(t, svc.SaveProduct(context.Background(), snapshot("111", "Edited", 123)))

	stored := env.products.products["111"]
	assert.True(t, stored.UserEdited)
}

func TestCatalogService_SaveProduct_EmptyCode(t *testing.T) {
	env := newTestEnv()
	svc := NewCatalogService(env.storages, env.provider)

	err := svc.SaveProduct(context.Background(), models.Product{Name: "no code"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// Editing a product must propagate into every daily log entry embedding its
// snapshot, and must leave every other entry untouched.
func TestCatalogService_SaveProduct_CascadesIntoLogs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	log := models.NewDailyLog("2026-08-01")
	log.Entries[models.CategoryBreakfast] = []models.FoodEntry{
		gramEntry(snapshot("X", "Old name", 100), 50),
		gramEntry(snapshot("Y", "Other", 200), 80),
	}
	log.Entries[models.CategoryDinner] = []models.FoodEntry{
		{Product: models.Product{Code: "X", Name: "Old name", Nutrients: models.Nutrients{Calories: 100}}, Quantity: 1, Unit: models.UnitPiece},
	}
	env.dailyLogs.logs["2026-08-01"] = log

	svc := NewCatalogService(env.storages, env.provider)
	require.NoError(t, svc.SaveProduct(ctx, snapshot("X", "New name", 150)))

	updated, err := env.dailyLogs.Get(ctx, "2026-08-01")
	require.NoError(t, err)

	breakfast := updated.Entries[models.CategoryBreakfast]
	assert.Equal(t, "New name", breakfast[0].Product.Name)
	assert.InDelta(t, 150, breakfast[0].Product.Nutrients.Calories, 0.01)
	assert.InDelta(t, 50, breakfast[0].Quantity, 0.01, "quantity is never touched")

	assert.Equal(t, "Other", breakfast[1].Product.Name, "unrelated entry untouched")
	assert.InDelta(t, 200, breakfast[1].Product.Nutrients.Calories, 0.01)

	dinner := updated.Entries[models.CategoryDinner]
	assert.InDelta(t, 150, dinner[0].Product.Nutrients.Calories, 0.01, "all categories are scanned")
}

func TestCatalogService_SaveProduct_CascadesIntoMeals(t *testing.T) {
	env := newTestEnv()
	env.meals.meals["meal-1"] = models.Meal{
		ID:   "meal-1",
		Name: "Porridge",
		Foods: []models.FoodEntry{
			gramEntry(snapshot("X", "Old", 100), 40),
			gramEntry(snapshot("Z", "Stays", 70), 10),
		},
	}

	svc := NewCatalogService(env.storages, env.provider)
	require.NoError(t, svc.SaveProduct(context.Background(), snapshot("X", "New", 150)))

	meal := env.meals.meals["meal-1"]
	assert.Equal(t, "New", meal.Foods[0].Product.Name)
	assert.InDelta(t, 150, meal.Foods[0].Product.Nutrients.Calories, 0.01)
	assert.Equal(t, "Stays", meal.Foods[1].Product.Name)
}

// A meal reference whose embedded code collides with a product code must not
// be rewritten by a product cascade.
func TestCatalogService_SaveProduct_SkipsMealRefs(t *testing.T) {
	env := newTestEnv()
	log := models.NewDailyLog("2026-08-01")
	log.Entries[models.CategoryLunch] = []models.FoodEntry{
		{Product: models.Product{Code: "X", Name: "Meal called X", Nutrients: models.Nutrients{Calories: 500}}, Quantity: 1, Unit: models.UnitMeal},
	}
	env.dailyLogs.logs["2026-08-01"] = log

	svc := NewCatalogService(env.storages, env.provider)
	require.NoError(t, svc.SaveProduct(context.Background(), snapshot("X", "Product X", 150)))

	updated := env.dailyLogs.logs["2026-08-01"]
	assert.Equal(t, "Meal called X", updated.Entries[models.CategoryLunch][0].Product.Name)
}

func TestCatalogService_SaveProduct_SkipsUnchangedRecords(t *testing.T) {
	env := newTestEnv()
	current := snapshot("X", "Same", 100)

	log := models.NewDailyLog("2026-08-01")
	log.Entries[models.CategoryBreakfast] = []models.FoodEntry{gramEntry(current, 50)}
	env.dailyLogs.logs["2026-08-01"] = log

	other := models.NewDailyLog("2026-08-02")
	other.Entries[models.CategoryLunch] = []models.FoodEntry{gramEntry(snapshot("Y", "Other", 10), 10)}
	env.dailyLogs.logs["2026-08-02"] = other

	svc := NewCatalogService(env.storages, env.provider)
	require.NoError(t, svc.SaveProduct(context.Background(), current))

	// only the canonical product write, no log record was written back
	assert.Equal(t, 0, env.dailyLogs.puts)
}

func TestCatalogService_SaveProduct_ScanFailureAborts(t *testing.T) {
	env := newTestEnv()
	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		log := models.NewDailyLog(date)
		log.Entries[models.CategoryBreakfast] = []models.FoodEntry{gramEntry(snapshot("X", "Old", 100), 50)}
		env.dailyLogs.logs[date] = log
	}
	env.dailyLogs.scanErr = errors.New("cursor lost")
	env.dailyLogs.scanErrAfter = 2

	svc := NewCatalogService(env.storages, env.provider)
	err := svc.SaveProduct(context.Background(), snapshot("X", "New", 150))
	require.ErrorIs(t, err, ErrCascadeScan)

	// records visited before the failure keep their refreshed values
	assert.Equal(t, "New", env.dailyLogs.logs["2026-08-01"].Entries[models.CategoryBreakfast][0].Product.Name)
	assert.Equal(t, "New", env.dailyLogs.logs["2026-08-02"].Entries[models.CategoryBreakfast][0].Product.Name)
	assert.Equal(t, "Old", env.dailyLogs.logs["2026-08-03"].Entries[models.CategoryBreakfast][0].Product.Name)
}

func TestCatalogService_RefreshStale(t *testing.T) {
	env := newTestEnv()
	old := time.Now().Add(-30 * 24 * time.Hour)

	stale := snapshot("1", "Stale", 100)
	stale.FetchedAt = old
	edited := snapshot("2", "Edited", 200)
	edited.FetchedAt = old
	edited.UserEdited = true
	fresh := snapshot("3", "Fresh", 300)
	fresh.FetchedAt = time.Now()

	for _, p := range []models.Product{stale, edited, fresh} {
		env.products.products[p.Code] = p
	}

	refetched := snapshot("1", "Stale renamed", 110)
	refetched.FetchedAt = time.Now()
	env.provider.products["1"] = refetched

	svc := NewCatalogService(env.storages, env.provider)
	refreshed, err := svc.RefreshStale(context.Background(), refreshMaxAge)
	require.NoError(t, err)

	assert.Equal(t, 1, refreshed)
	assert.Equal(t, []string{"1"}, env.provider.lookups, "user-edited and fresh products are not refetched")
	assert.Equal(t, "Stale renamed", env.products.products["1"].Name)
	assert.Equal(t, "Edited", env.products.products["2"].Name)
}

func TestCatalogService_RefreshStale_SkipsFailedLookups(t *testing.T) {
	env := newTestEnv()
	old := time.Now().Add(-30 * 24 * time.Hour)
	for _, code := range []string{"1", "2"} {
		p := snapshot(code, "Stale "+code, 100)
		p.FetchedAt = old
		env.products.products[code] = p
	}
	env.provider.products["2"] = snapshot("2", "Refetched", 120)
	// code "1" is unknown to the provider, its lookup fails

	svc := NewCatalogService(env.storages, env.provider)
	refreshed, err := svc.RefreshStale(context.Background(), refreshMaxAge)
	require.NoError(t, err)

	assert.Equal(t, 1, refreshed)
	assert.Equal(t, "Stale 1", env.products.products["1"].Name)
	assert.Equal(t, "Refetched", env.products.products["2"].Name)
}
