package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/migrations"
)

// DB wraps the SQLite connection shared by all repositories. Migrate is
// guarded so concurrent initialization attempts run exactly one schema
// upgrade pass and all callers observe the same result.
type DB struct {
	*sql.DB
	logger *logger.Logger

	migrateOnce sync.Once
	migrateErr  error
}

// NewConnectSQLite opens (creating if absent) the SQLite database at
// cfg.Path. Returns [ErrStoreUnavailable] if the file cannot be created or
// the engine cannot be opened.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Path != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// each pooled connection to ":memory:" would see its own empty database
	if cfg.Path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies pending schema migrations. Safe to call concurrently: the
// first call runs the upgrade pass, all callers share its outcome.
func (db *DB) Migrate() error {
	db.migrateOnce.Do(func() {
		db.migrateErr = migrations.Migrate(db.DB)
	})
	return db.migrateErr
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
