package store

import (
	"context"
	"time"

	"github.com/msavelyeva/nutrikeep/models"
)

// DailyLogVisitor is called once per stored daily log during a full scan.
// Returning changed=true asks the repository to persist the (mutated) record
// before moving on; returning an error aborts the scan. Writes already made
// by earlier visits stay in place.
type DailyLogVisitor func(log *models.DailyLog) (changed bool, err error)

// MealVisitor is the meal-collection counterpart of [DailyLogVisitor].
type MealVisitor func(meal *models.Meal) (changed bool, err error)

// DailyLogRepository stores one record per date with the six category entry
// lists persisted as a JSON document.
type DailyLogRepository interface {
	Get(ctx context.Context, date string) (*models.DailyLog, error)
	Put(ctx context.Context, log *models.DailyLog) error
	Delete(ctx context.Context, date string) error
	GetAll(ctx context.Context) ([]*models.DailyLog, error)
	// ForEach visits every stored log exactly once, writing back records
	// the visitor marks as changed.
	ForEach(ctx context.Context, visit DailyLogVisitor) error
}

// ProductRepository is the local cache of nutritional facts, keyed by
// barcode. At most one copy exists per code; Put always overwrites.
type ProductRepository interface {
	Get(ctx context.Context, code string) (models.Product, error)
	Put(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, code string) error
	GetAll(ctx context.Context) ([]models.Product, error)
	SearchByName(ctx context.Context, namePart string, limit int) ([]models.Product, error)
	// GetStale returns cached products fetched before cutoff that the user
	// has not edited, for background refresh.
	GetStale(ctx context.Context, cutoff time.Time) ([]models.Product, error)
}

// FavoriteRepository is a keyed set of favorited product codes.
type FavoriteRepository interface {
	Add(ctx context.Context, code string) error
	Remove(ctx context.Context, code string) error
	Is(ctx context.Context, code string) (bool, error)
	GetAll(ctx context.Context) ([]string, error)
}

// MealRepository stores saved meals with their food lists persisted as a
// JSON document.
type MealRepository interface {
	Get(ctx context.Context, id string) (models.Meal, error)
	Put(ctx context.Context, meal models.Meal) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Meal, error)
	ForEach(ctx context.Context, visit MealVisitor) error
}

// WeightRepository is a keyed time series of weight measurements. GetAll
// returns entries sorted ascending by date.
type WeightRepository interface {
	Get(ctx context.Context, date string) (models.WeightEntry, error)
	Put(ctx context.Context, entry models.WeightEntry) error
	Delete(ctx context.Context, date string) error
	GetAll(ctx context.Context) ([]models.WeightEntry, error)
	GetRange(ctx context.Context, fromDate, toDate string) ([]models.WeightEntry, error)
}

// SettingsRepository is simple string key/value storage outside the record
// collections: user profile JSON, theme, language.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
