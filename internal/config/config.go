// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults applied after merging all configuration sources.
const (
	DefaultFoodAPIBaseURL = "https://world.openfoodfacts.org"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSearchPageSize = 20
)

// StructuredConfig is the top-level configuration container for nutrikeep.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the remote food database API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs such as the stale
	// product cache refresher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the NUTRIKEEP_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"NUTRIKEEP_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the SQLite database location.
type DB struct {
	// Path is the filesystem path of the SQLite database file. The special
	// value ":memory:" opens an in-memory database (used by tests).
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Adapter holds settings for the outbound food database client.
type Adapter struct {
	// FoodAPIBaseURL is the base URL of the Open Food Facts compatible API
	// used for barcode lookups and text search.
	// Env: ADAPTER_FOOD_API_URL
	FoodAPIBaseURL string `env:"FOOD_API_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SearchPageSize is the number of results requested per search page.
	// Env: ADAPTER_SEARCH_PAGE_SIZE
	SearchPageSize int `env:"SEARCH_PAGE_SIZE"`
}

// Workers contains background job settings.
type Workers struct {
	// CacheRefreshInterval defines how often the product cache refresher
	// re-fetches stale, non-user-edited products. Zero disables the job.
	// Env: WORKERS_CACHE_REFRESH_INTERVAL
	CacheRefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL"`
}

// GetConfig builds the merged configuration from environment variables, the
// flag values collected by the CLI layer (may be nil), and the optional JSON
// file, applies defaults, and validates the result. Environment variables
// take precedence over flags, which take precedence over the JSON file.
func GetConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *StructuredConfig) applyDefaults() {
	if c.Storage.DB.Path == "" {
		c.Storage.DB.Path = defaultDBPath()
	}
	if c.Adapter.FoodAPIBaseURL == "" {
		c.Adapter.FoodAPIBaseURL = DefaultFoodAPIBaseURL
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Adapter.SearchPageSize <= 0 {
		c.Adapter.SearchPageSize = DefaultSearchPageSize
	}
}

// defaultDBPath places the database under the user's config directory,
// falling back to the working directory when the home cannot be resolved.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "nutrikeep.db"
	}
	return filepath.Join(dir, "nutrikeep", "nutrikeep.db")
}
