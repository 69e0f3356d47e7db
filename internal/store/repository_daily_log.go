package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

type dailyLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewDailyLogRepository(db *DB, logger *logger.Logger) DailyLogRepository {
	return &dailyLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dailyLogRepository) Get(ctx context.Context, date string) (*models.DailyLog, error) {
	log := logger.FromContext(ctx)

	var entriesJSON string
	var storedDate string
	err := r.DB.QueryRowContext(ctx, getDailyLog, date).Scan(&storedDate, &entriesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDailyLogNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.Get").
			Str("date", date).
			Msg("failed to query daily log")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return decodeDailyLog(storedDate, entriesJSON)
}

func (r *dailyLogRepository) Put(ctx context.Context, dayLog *models.DailyLog) error {
	log := logger.FromContext(ctx)

	dayLog.Normalize()
	entriesJSON, err := json.Marshal(dayLog.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode daily log entries (date=%s): %w", dayLog.Date, err)
	}

	if _, err = r.DB.ExecContext(ctx, upsertDailyLog, dayLog.Date, string(entriesJSON)); err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.Put").
			Str("date", dayLog.Date).
			Msg("failed to execute upsert for daily log")
		return fmt.Errorf("failed to save daily log (date=%s): %w", dayLog.Date, err)
	}

	return nil
}

func (r *dailyLogRepository) Delete(ctx context.Context, date string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteDailyLog, date); err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.Delete").
			Str("date", date).
			Msg("failed to execute delete for daily log")
		return fmt.Errorf("failed to delete daily log (date=%s): %w", date, err)
	}

	return nil
}

func (r *dailyLogRepository) GetAll(ctx context.Context) ([]*models.DailyLog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllDailyLogs)
	if err != nil {
		log.Err(err).
			Str("func", "dailyLogRepository.GetAll").
			Msg("failed to query all daily logs")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var logs []*models.DailyLog
	for rows.Next() {
		var date, entriesJSON string
		if scanErr := rows.Scan(&date, &entriesJSON); scanErr != nil {
			log.Err(scanErr).
				Str("func", "dailyLogRepository.GetAll").
				Msg("failed to scan daily log row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}

		dayLog, decErr := decodeDailyLog(date, entriesJSON)
		if decErr != nil {
			return nil, decErr
		}
		logs = append(logs, dayLog)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "dailyLogRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating daily log rows: %w", rowsErr)
	}

	return logs, nil
}

// ForEach implements the cursor-style full scan used by cascade updates: the
// whole collection is read first, then each record is handed to the visitor
// and written back only when the visitor reports a change. A write failure
// aborts the scan; records already written stay modified.
func (r *dailyLogRepository) ForEach(ctx context.Context, visit DailyLogVisitor) error {
	log := logger.FromContext(ctx)

	logs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, dayLog := range logs {
		changed, visitErr := visit(dayLog)
		if visitErr != nil {
			return fmt.Errorf("daily log scan visitor failed (date=%s): %w", dayLog.Date, visitErr)
		}
		if !changed {
			continue
		}

		entriesJSON, encErr := json.Marshal(dayLog.Entries)
		if encErr != nil {
			return fmt.Errorf("failed to encode daily log entries (date=%s): %w", dayLog.Date, encErr)
		}

		if _, execErr := r.DB.ExecContext(ctx, updateDailyLogEntries, string(entriesJSON), dayLog.Date); execErr != nil {
			log.Err(execErr).
				Str("func", "dailyLogRepository.ForEach").
				Str("date", dayLog.Date).
				Msg("failed to write back scanned daily log")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, execErr)
		}
	}

	return nil
}

func decodeDailyLog(date, entriesJSON string) (*models.DailyLog, error) {
	dayLog := &models.DailyLog{Date: date}
	if err := json.Unmarshal([]byte(entriesJSON), &dayLog.Entries); err != nil {
		return nil, fmt.Errorf("%w (date=%s): %v", ErrDecodingRecord, date, err)
	}
	dayLog.Normalize()
	return dayLog, nil
}
