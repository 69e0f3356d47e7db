// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/utils"
	"github.com/msavelyeva/nutrikeep/models"
)

type openFoodFactsAdapter struct {
	client   *utils.HTTPClient
	pageSize int

	logger *logger.Logger
}

// NewOpenFoodFactsAdapter constructs the HTTP implementation of
// [FoodDataProvider] against an Open Food Facts compatible API. It normalises
// and validates the base URL from cfg.FoodAPIBaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.FoodAPIBaseURL is empty or cannot be parsed as a
// valid URL.
func NewOpenFoodFactsAdapter(cfg config.Adapter, logger *logger.Logger) (FoodDataProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.FoodAPIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid food API address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", "nutrikeep/1.0")

	return &openFoodFactsAdapter{
		client:   client,
		pageSize: cfg.SearchPageSize,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// productResponse is the /api/v2/product payload. Status 0 with a 200 code
// also means "unknown barcode".
type productResponse struct {
	Status  int           `json:"status"`
	Product remoteProduct `json:"product"`
}

type searchResponse struct {
	Products []remoteProduct `json:"products"`
}

type remoteProduct struct {
	Code       string           `json:"code"`
	Name       string           `json:"product_name"`
	Brands     string           `json:"brands"`
	Nutriments remoteNutriments `json:"nutriments"`
	// serving_quantity arrives as a number or a string depending on the
	// product record, hence the raw decode below
	ServingQuantity     any    `json:"serving_quantity"`
	ServingQuantityUnit string `json:"serving_quantity_unit"`
}

type remoteNutriments struct {
	EnergyKcal100g float64 `json:"energy-kcal_100g"`
	Proteins100g   float64 `json:"proteins_100g"`
	Carbs100g      float64 `json:"carbohydrates_100g"`
	Fat100g        float64 `json:"fat_100g"`
	Fiber100g      float64 `json:"fiber_100g"`
	Sugars100g     float64 `json:"sugars_100g"`
	Sodium100g     float64 `json:"sodium_100g"`
}

// LookupBarcode implements [FoodDataProvider]. It GETs
// /api/v2/product/{code}.json and maps the payload into a [models.Product]
// stamped with the fetch time.
func (a *openFoodFactsAdapter) LookupBarcode(ctx context.Context, code string) (models.Product, error) {
	var payload productResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/v2/product/" + url.PathEscape(code) + ".json")
	if err != nil {
		return models.Product{}, fmt.Errorf("barcode lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	if payload.Status == 0 {
		return models.Product{}, fmt.Errorf("%w: barcode %s", ErrNotFound, code)
	}

	product := payload.Product.toModel()
	if product.Code == "" {
		product.Code = code
	}
	return product, nil
}

// Search implements [FoodDataProvider] via the legacy full-text search
// endpoint, which is the only one offered without authentication.
func (a *openFoodFactsAdapter) Search(ctx context.Context, query string, page int) ([]models.Product, error) {
	if page < 1 {
		page = 1
	}

	var payload searchResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page":          strconv.Itoa(page),
			"page_size":     strconv.Itoa(a.pageSize),
		}).
		SetResult(&payload).
		Get("/cgi/search.pl")
	if err != nil {
		return nil, fmt.Errorf("product search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(payload.Products))
	for _, remote := range payload.Products {
		if remote.Code == "" {
			continue
		}
		products = append(products, remote.toModel())
	}
	return products, nil
}

func (r remoteProduct) toModel() models.Product {
	return models.Product{
		Code:  r.Code,
		Name:  r.Name,
		Brand: r.Brands,
		Nutrients: models.Nutrients{
			Calories: r.Nutriments.EnergyKcal100g,
			Protein:  r.Nutriments.Proteins100g,
			Carbs:    r.Nutriments.Carbs100g,
			Fat:      r.Nutriments.Fat100g,
			Fiber:    r.Nutriments.Fiber100g,
			Sugar:    r.Nutriments.Sugars100g,
			Sodium:   r.Nutriments.Sodium100g,
		},
		ServingSize: parseServingQuantity(r.ServingQuantity),
		ServingUnit: r.ServingQuantityUnit,
		FetchedAt:   time.Now().UTC(),
	}
}

func parseServingQuantity(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
