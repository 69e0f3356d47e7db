// Package service implements the application logic on top of the storage
// layer: daily log operations, the product cache with cascade updates, saved
// meals, favorites, weight history, the user profile, and import/export. UI
// components call services only and never touch storage directly.
package service

import (
	"github.com/msavelyeva/nutrikeep/internal/adapter"
	"github.com/msavelyeva/nutrikeep/internal/store"
)

type Services struct {
	LogService      LogService
	CatalogService  CatalogService
	MealService     MealService
	FavoriteService FavoriteService
	WeightService   WeightService
	ProfileService  ProfileService
	TransferService TransferService
	CacheRefreshJob CacheRefreshJob
}

func NewServices(storages *store.Storages, provider adapter.FoodDataProvider) *Services {
	catalogSvc := NewCatalogService(storages, provider)

	return &Services{
		LogService:      NewLogService(storages),
		CatalogService:  catalogSvc,
		MealService:     NewMealService(storages),
		FavoriteService: NewFavoriteService(storages),
		WeightService:   NewWeightService(storages),
		ProfileService:  NewProfileService(storages),
		TransferService: NewTransferService(storages),
		CacheRefreshJob: NewCacheRefreshJob(catalogSvc),
	}
}
