package store

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/logger"
)

type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *favoriteRepository) Add(ctx context.Context, code string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, addFavorite, code); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Add").
			Str("code", code).
			Msg("failed to add favorite")
		return fmt.Errorf("failed to add favorite (code=%s): %w", code, err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, code string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, removeFavorite, code); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Remove").
			Str("code", code).
			Msg("failed to remove favorite")
		return fmt.Errorf("failed to remove favorite (code=%s): %w", code, err)
	}

	return nil
}

func (r *favoriteRepository) Is(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.DB.QueryRowContext(ctx, isFavorite, code).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Is").
			Str("code", code).
			Msg("failed to query favorite")
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *favoriteRepository) GetAll(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllFavorites)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.GetAll").
			Msg("failed to query all favorites")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if scanErr := rows.Scan(&code); scanErr != nil {
			log.Err(scanErr).
				Str("func", "favoriteRepository.GetAll").
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}
		codes = append(codes, code)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "favoriteRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating favorite rows: %w", rowsErr)
	}

	return codes, nil
}
