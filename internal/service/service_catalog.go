// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msavelyeva/nutrikeep/internal/adapter"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/validators"
	"github.com/msavelyeva/nutrikeep/models"
)

const localSearchLimit = 50

type catalogService struct {
	products  store.ProductRepository
	dailyLogs store.DailyLogRepository
	meals     store.MealRepository
	provider  adapter.FoodDataProvider
	validator validators.Validator
}

func NewCatalogService(storages *store.Storages, provider adapter.FoodDataProvider) CatalogService {
	return &catalogService{
		products:  storages.ProductRepository,
		dailyLogs: storages.DailyLogRepository,
		meals:     storages.MealRepository,
		provider:  provider,
		validator: validators.NewRecordValidator(),
	}
}

// GetProduct implements CatalogService: cache first, remote on a miss, and
// the remote result is cached for next time.
func (s *catalogService) GetProduct(ctx context.Context, code string) (models.Product, error) {
	product, err := s.products.Get(ctx, code)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, store.ErrProductNotFound) {
		return models.Product{}, fmt.Errorf("get cached product: %w", err)
	}

	product, err = s.provider.LookupBarcode(ctx, code)
	if err != nil {
		return models.Product{}, fmt.Errorf("remote barcode lookup: %w", err)
	}

	if err = s.products.Put(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("cache fetched product: %w", err)
	}
	return product, nil
}

// SearchProducts implements CatalogService. A failing remote database
// degrades to a search over the local cache instead of an error, so the app
// stays usable offline.
func (s *catalogService) SearchProducts(ctx context.Context, query string, page int) ([]models.Product, error) {
	results, err := s.provider.Search(ctx, query, page)
	if err == nil {
		return results, nil
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "catalogService.SearchProducts").
		Str("query", query).
		Msg("remote search failed, falling back to local cache")

	if page > 1 {
		return []models.Product{}, nil
	}
	results, localErr := s.products.SearchByName(ctx, query, localSearchLimit)
	if localErr != nil {
		return nil, fmt.Errorf("remote search failed (%v), local fallback: %w", err, localErr)
	}
	return results, nil
}

// SaveProduct implements CatalogService. The stored copy is marked as user
// edited, which makes it the source of truth: background refreshes skip it
// from now on. The edit then cascades into every referencing snapshot.
func (s *catalogService) SaveProduct(ctx context.Context, product models.Product) error {
	if err := s.validator.Validate(ctx, product, validators.FieldCode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	product.UserEdited = true
	if err := s.products.Put(ctx, product); err != nil {
		return fmt.Errorf("save edited product: %w", err)
	}

	if err := s.updateProductInLogs(ctx, product); err != nil {
		return err
	}
	return s.updateProductInMeals(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, code string) error {
	if err := s.products.Delete(ctx, code); err != nil {
		return fmt.Errorf("delete cached product: %w", err)
	}
	return nil
}

func (s *catalogService) CachedProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cached products: %w", err)
	}
	return products, nil
}

// RefreshStale implements CatalogService. Lookup failures for individual
// products are logged and skipped; the refresh keeps going.
func (s *catalogService) RefreshStale(ctx context.Context, maxAge time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	stale, err := s.products.GetStale(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("list stale products: %w", err)
	}

	refreshed := 0
	for _, cached := range stale {
		fresh, err := s.provider.LookupBarcode(ctx, cached.Code)
		if err != nil {
			if ctx.Err() != nil {
				return refreshed, ctx.Err()
			}
			log.Err(err).
				Str("func", "catalogService.RefreshStale").
				Str("code", cached.Code).
				Msg("skipping product refresh")
			continue
		}

		if err = s.products.Put(ctx, fresh); err != nil {
			return refreshed, fmt.Errorf("cache refreshed product %s: %w", cached.Code, err)
		}
		if err = s.updateProductInLogs(ctx, fresh); err != nil {
			return refreshed, err
		}
		if err = s.updateProductInMeals(ctx, fresh); err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}

// updateProductInLogs scans every stored daily log and refreshes each entry
// snapshot whose product code matches. Records that end up unchanged are not
// written back. A mid-scan engine failure aborts the cascade; writes already
// made stay in place.
func (s *catalogService) updateProductInLogs(ctx context.Context, product models.Product) error {
	err := s.dailyLogs.ForEach(ctx, func(log *models.DailyLog) (bool, error) {
		changed := false
		for _, category := range models.Categories {
			entries := log.Entries[category]
			for i := range entries {
				if entries[i].IsMealRef() || entries[i].Product.Code != product.Code {
					continue
				}
				if entries[i].RefreshFrom(product) {
					changed = true
				}
			}
		}
		return changed, nil
	})
	if err != nil {
		return fmt.Errorf("%w: product %s in daily logs: %v", ErrCascadeScan, product.Code, err)
	}
	return nil
}

// updateProductInMeals is the meal-collection counterpart of
// updateProductInLogs: saved meals embed the same snapshots.
func (s *catalogService) updateProductInMeals(ctx context.Context, product models.Product) error {
	err := s.meals.ForEach(ctx, func(meal *models.Meal) (bool, error) {
		changed := false
		for i := range meal.Foods {
			if meal.Foods[i].IsMealRef() || meal.Foods[i].Product.Code != product.Code {
				continue
			}
			if meal.Foods[i].RefreshFrom(product) {
				changed = true
			}
		}
		return changed, nil
	})
	if err != nil {
		return fmt.Errorf("%w: product %s in meals: %v", ErrCascadeScan, product.Code, err)
	}
	return nil
}
