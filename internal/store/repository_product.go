// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

var productColumns = []string{
	"code", "name", "brand", "calories", "protein", "carbs", "fat",
	"fiber", "sugar", "sodium", "serving_size", "serving_unit",
	"user_edited", "fetched_at",
}

func (r *productRepository) Get(ctx context.Context, code string) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getProduct, code)
	product, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Get").
			Str("code", code).
			Msg("failed to query cached product")
		return models.Product{}, err
	}

	return product, nil
}

func (r *productRepository) Put(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	var fetchedAt any
	if !product.FetchedAt.IsZero() {
		fetchedAt = product.FetchedAt.UTC()
	}

	_, err := r.DB.ExecContext(ctx, upsertProduct,
		product.Code,
		product.Name,
		product.Brand,
		product.Nutrients.Calories,
		product.Nutrients.Protein,
		product.Nutrients.Carbs,
		product.Nutrients.Fat,
		product.Nutrients.Fiber,
		product.Nutrients.Sugar,
		product.Nutrients.Sodium,
		product.ServingSize,
		product.ServingUnit,
		product.UserEdited,
		fetchedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Put").
			Str("code", product.Code).
			Msg("failed to execute upsert for cached product")
		return fmt.Errorf("failed to save product (code=%s): %w", product.Code, err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, code string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteProduct, code); err != nil {
		log.Err(err).
			Str("func", "productRepository.Delete").
			Str("code", code).
			Msg("failed to execute delete for cached product")
		return fmt.Errorf("failed to delete product (code=%s): %w", code, err)
	}

	return nil
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, "productRepository.GetAll", getAllProducts)
}

// SearchByName matches cached products whose name or brand contains namePart,
// for offline search before hitting the remote API.
func (r *productRepository) SearchByName(ctx context.Context, namePart string, limit int) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	pattern := "%" + namePart + "%"
	builder := sq.Select(productColumns...).
		From("products").
		Where(sq.Or{
			sq.Like{"name": pattern},
			sq.Like{"brand": pattern},
		}).
		OrderBy("name")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.SearchByName").
			Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryProducts(ctx, "productRepository.SearchByName", query, args...)
}

// GetStale returns cached products fetched before cutoff that the user has
// not edited. User-edited products are the source of truth and are never
// refreshed from the remote API.
func (r *productRepository) GetStale(ctx context.Context, cutoff time.Time) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(productColumns...).
		From("products").
		Where(sq.Eq{"user_edited": false}).
		Where(sq.Lt{"fetched_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.GetStale").
			Msg("failed to build staleness query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryProducts(ctx, "productRepository.GetStale", query, args...)
}

func (r *productRepository) queryProducts(ctx context.Context, caller, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute product query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan product row")
			return nil, scanErr
		}
		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating product rows: %w", rowsErr)
	}

	return products, nil
}

func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var product models.Product
	var fetchedAt sql.NullTime

	err := scan(
		&product.Code,
		&product.Name,
		&product.Brand,
		&product.Nutrients.Calories,
		&product.Nutrients.Protein,
		&product.Nutrients.Carbs,
		&product.Nutrients.Fat,
		&product.Nutrients.Fiber,
		&product.Nutrients.Sugar,
		&product.Nutrients.Sodium,
		&product.ServingSize,
		&product.ServingUnit,
		&product.UserEdited,
		&fetchedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if fetchedAt.Valid {
		product.FetchedAt = fetchedAt.Time
	} else {
		product.FetchedAt = time.Time{}
	}

	return product, nil
}
