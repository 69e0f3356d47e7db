package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/logger"
)

// Well-known settings keys. The user profile is stored as a JSON document
// under SettingUserProfile; theme and language are plain strings.
const (
	SettingUserProfile = "user_profile"
	SettingTheme       = "theme"
	SettingLanguage    = "language"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to query setting")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *settingsRepository) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to execute upsert for setting")
		return fmt.Errorf("failed to save setting (key=%s): %w", key, err)
	}

	return nil
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete for setting")
		return fmt.Errorf("failed to delete setting (key=%s): %w", key, err)
	}

	return nil
}
