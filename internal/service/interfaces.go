// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package service

import (
	"context"
	"time"

	"github.com/msavelyeva/nutrikeep/internal/transfer"
	"github.com/msavelyeva/nutrikeep/models"
)

// LogService manages the per-date consumption records. Reads never surface
// absence: a date with no stored record yields a fully-populated empty log.
type LogService interface {
	// GetDailyLog returns the log for date with all six category lists
	// present, defaulting to empty when nothing is stored yet.
	GetDailyLog(ctx context.Context, date string) (*models.DailyLog, error)

	// AddFoodItem appends entry to the category list of the given date,
	// creating the log if absent. Insertion order is display order.
	AddFoodItem(ctx context.Context, date string, category models.Category, entry models.FoodEntry) error

	// RemoveFoodItem removes the entry at index from a category list.
	// An out-of-range index is a silent no-op, not an error.
	RemoveFoodItem(ctx context.Context, date string, category models.Category, index int) error

	// DailyTotals sums the scaled nutrition of everything logged on date.
	DailyTotals(ctx context.Context, date string) (models.Nutrients, error)
}

// CatalogService manages the local product cache and its remote source.
// Editing a cached product cascades the new values into every daily log
// entry and saved meal that embeds a snapshot of it.
type CatalogService interface {
	// GetProduct returns the cached product for code, falling back to a
	// remote lookup (and caching the result) on a cache miss.
	GetProduct(ctx context.Context, code string) (models.Product, error)

	// SearchProducts runs a remote full-text search. When the remote
	// database is unreachable it falls back to searching the local cache.
	SearchProducts(ctx context.Context, query string, page int) ([]models.Product, error)

	// SaveProduct stores a user-edited product and propagates the edit
	// into all referencing daily log entries and meal foods. A user-edited
	// product is never overwritten by background refreshes afterwards.
	SaveProduct(ctx context.Context, product models.Product) error

	// DeleteProduct evicts a product from the cache. Snapshots embedded in
	// logs and meals are left untouched.
	DeleteProduct(ctx context.Context, code string) error

	// CachedProducts lists the whole local cache.
	CachedProducts(ctx context.Context) ([]models.Product, error)

	// RefreshStale re-fetches every cached product older than maxAge that
	// the user has not edited, cascading changed values into logs and
	// meals. Returns the number of products refreshed.
	RefreshStale(ctx context.Context, maxAge time.Duration) (int, error)
}

// MealService manages saved meals. Saves are auto-save semantics: every edit
// persists immediately and cascades into daily log entries referencing the
// meal.
type MealService interface {
	GetMeal(ctx context.Context, id string) (models.Meal, error)
	GetAllMeals(ctx context.Context) ([]models.Meal, error)

	// SaveMeal upserts meal, assigning a fresh namespaced id when meal.ID
	// is empty, and refreshes every daily log entry that references it.
	SaveMeal(ctx context.Context, meal models.Meal) (models.Meal, error)

	// DeleteMeal removes a saved meal. Log entries referencing it keep
	// their last snapshot.
	DeleteMeal(ctx context.Context, id string) error

	// MealTotals sums the scaled nutrition of the meal's food list.
	MealTotals(meal models.Meal) models.Nutrients
}

// FavoriteService manages the set of favorited product codes.
type FavoriteService interface {
	// Toggle flips the favorite state of code and returns the new state.
	Toggle(ctx context.Context, code string) (favorited bool, err error)
	IsFavorite(ctx context.Context, code string) (bool, error)
	GetFavorites(ctx context.Context) ([]string, error)
}

// WeightService manages the weight time series, one entry per date.
type WeightService interface {
	// RecordWeight upserts the measurement for date.
	RecordWeight(ctx context.Context, date string, weight float64) error
	DeleteWeight(ctx context.Context, date string) error

	// History returns all entries sorted ascending by date.
	History(ctx context.Context) ([]models.WeightEntry, error)
	HistoryRange(ctx context.Context, fromDate, toDate string) ([]models.WeightEntry, error)
}

// ProfileService manages the singleton user profile and simple app settings
// stored outside the record collections.
type ProfileService interface {
	// GetProfile returns the stored profile, or a zero profile when none
	// was saved yet. Absence is not an error.
	GetProfile(ctx context.Context) (models.UserProfile, error)
	SaveProfile(ctx context.Context, profile models.UserProfile) error

	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	GetLanguage(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, language string) error

	// SuggestedCalories estimates a daily calorie goal from the profile's
	// body data using the Mifflin-St Jeor equation. Returns 0 when the
	// profile lacks height or weight.
	SuggestedCalories(profile models.UserProfile) float64
}

// TransferService serialises the store for export and loads exported
// payloads back in.
type TransferService interface {
	// Export assembles the requested sections (see models.AllSections; nil
	// means all) and encodes them in the given format.
	Export(ctx context.Context, sections []string, format transfer.Format) ([]byte, error)

	// Import parses data and conditionally writes every parsed record:
	// always when override is set, otherwise only when no record with the
	// same key exists. Parse failures return ErrImportParse before any
	// write; individual write failures are collected in the report and do
	// not stop the run.
	Import(ctx context.Context, data []byte, format transfer.Format, override bool) (models.ImportReport, error)

	// ClearAllData irrecoverably wipes every record collection and all
	// settings, profile included.
	ClearAllData(ctx context.Context) error
}

// CacheRefreshJob periodically re-fetches stale cached products in the
// background.
type CacheRefreshJob interface {
	// Start launches the background refresh loop, replacing any previous
	// run. If interval is zero or negative it defaults to 24 hours.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// when the job is not running.
	Stop()
}
