// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package store

import (
	"context"
	"database/sql/driver"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

// newTestStorages opens a migrated in-memory store for repository tests.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(config.Storage{DB: config.DB{Path: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

// newMockDB wraps a sqlmock connection in a *DB for error-path tests.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{DB: conn, logger: logger.Nop()}, mock
}

// sqlmockRows builds a single-row result set for mock queries.
func sqlmockRows(columns []string, values []any) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns)
	driverValues := make([]driver.Value, len(values))
	for i, v := range values {
		driverValues[i] = v
	}
	return rows.AddRow(driverValues...)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testProduct(code, name string, calories float64) models.Product {
	return models.Product{
		Code:  code,
		Name:  name,
		Brand: "Test Brand",
		Nutrients: models.Nutrients{
			Calories: calories,
			Protein:  10,
			Carbs:    20,
			Fat:      5,
		},
	}
}

func testEntry(code, name string, calories, quantity float64) models.FoodEntry {
	return models.FoodEntry{
		Product:  testProduct(code, name, calories),
		Quantity: quantity,
		Unit:     models.UnitGram,
	}
}
