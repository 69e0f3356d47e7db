package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

type weightRepository struct {
	*DB
	logger *logger.Logger
}

func NewWeightRepository(db *DB, logger *logger.Logger) WeightRepository {
	return &weightRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *weightRepository) Get(ctx context.Context, date string) (models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.WeightEntry
	err := r.DB.QueryRowContext(ctx, getWeightEntry, date).Scan(&entry.Date, &entry.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeightEntry{}, ErrWeightEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "weightRepository.Get").
			Str("date", date).
			Msg("failed to query weight entry")
		return models.WeightEntry{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *weightRepository) Put(ctx context.Context, entry models.WeightEntry) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertWeightEntry, entry.Date, entry.Weight); err != nil {
		log.Err(err).
			Str("func", "weightRepository.Put").
			Str("date", entry.Date).
			Msg("failed to execute upsert for weight entry")
		return fmt.Errorf("failed to save weight entry (date=%s): %w", entry.Date, err)
	}

	return nil
}

func (r *weightRepository) Delete(ctx context.Context, date string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteWeightEntry, date); err != nil {
		log.Err(err).
			Str("func", "weightRepository.Delete").
			Str("date", date).
			Msg("failed to execute delete for weight entry")
		return fmt.Errorf("failed to delete weight entry (date=%s): %w", date, err)
	}

	return nil
}

// GetAll returns the whole history sorted ascending by date. The YYYY-MM-DD
// key format makes lexicographic order chronological.
func (r *weightRepository) GetAll(ctx context.Context) ([]models.WeightEntry, error) {
	return r.queryEntries(ctx, "weightRepository.GetAll", getAllWeightEntries)
}

// GetRange returns entries with fromDate <= date <= toDate, ascending.
func (r *weightRepository) GetRange(ctx context.Context, fromDate, toDate string) ([]models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("date", "weight").
		From("weight_history").
		Where(sq.GtOrEq{"date": fromDate}).
		Where(sq.LtOrEq{"date": toDate}).
		OrderBy("date").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "weightRepository.GetRange").
			Msg("failed to build range query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, "weightRepository.GetRange", query, args...)
}

func (r *weightRepository) queryEntries(ctx context.Context, caller, query string, args ...any) ([]models.WeightEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute weight history query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var entry models.WeightEntry
		if scanErr := rows.Scan(&entry.Date, &entry.Weight); scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan weight entry row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating weight entry rows: %w", rowsErr)
	}

	return entries, nil
}
