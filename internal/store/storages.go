// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package store

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
)

// Storages groups all record-collection repositories plus the settings
// storage into a single value that is passed into the service layer. It is
// the sole owner of persisted state: nothing above this package touches the
// database directly.
type Storages struct {
	DailyLogRepository DailyLogRepository
	ProductRepository  ProductRepository
	FavoriteRepository FavoriteRepository
	MealRepository     MealRepository
	WeightRepository   WeightRepository
	SettingsRepository SettingsRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.Path, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate], creating any
//     collection missing for the current schema version.
//  3. Constructs a [Storages] value wired to one repository per collection.
//
// Initialization is idempotent: re-running against an existing database only
// creates what is missing. Returns [ErrStoreUnavailable] (wrapped) if the
// engine cannot be opened or migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("opening local store...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: migration failed: %v", ErrStoreUnavailable, err)
	}

	return &Storages{
		DailyLogRepository: NewDailyLogRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
		MealRepository:     NewMealRepository(db, logger),
		WeightRepository:   NewWeightRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		db:                 db,
	}, nil
}

// ClearAll irrecoverably empties every record collection and the settings
// table in one transaction. The schema itself (and the migration version
// table) survives, so the store is immediately usable again.
func (s *Storages) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin wipe transaction: %w", err)
	}

	for _, table := range []string{
		"daily_consumption", "products", "favorites", "meals",
		"weight_history", "settings",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Err(err).
				Str("func", "Storages.ClearAll").
				Str("table", table).
				Msg("failed to clear collection")
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wipe transaction: %w", err)
	}

	return nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
