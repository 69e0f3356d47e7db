package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/models"
)

type logService struct {
	dailyLogs store.DailyLogRepository
}

func NewLogService(storages *store.Storages) LogService {
	return &logService{dailyLogs: storages.DailyLogRepository}
}

// GetDailyLog implements LogService. A date with no stored record returns a
// default log with all six category lists empty; absence never surfaces.
func (s *logService) GetDailyLog(ctx context.Context, date string) (*models.DailyLog, error) {
	log, err := s.dailyLogs.Get(ctx, date)
	if errors.Is(err, store.ErrDailyLogNotFound) {
		return models.NewDailyLog(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily log: %w", err)
	}
	return log, nil
}

// AddFoodItem implements LogService. The entry is appended to the end of the
// category list and the whole record is persisted.
func (s *logService) AddFoodItem(ctx context.Context, date string, category models.Category, entry models.FoodEntry) error {
	if !models.ValidCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	log, err := s.GetDailyLog(ctx, date)
	if err != nil {
		return err
	}

	log.Entries[category] = append(log.Entries[category], entry)
	if err = s.dailyLogs.Put(ctx, log); err != nil {
		return fmt.Errorf("save daily log after append: %w", err)
	}
	return nil
}

// RemoveFoodItem implements LogService. An index outside the category list is
// deliberately a silent no-op so stale UI positions never error.
func (s *logService) RemoveFoodItem(ctx context.Context, date string, category models.Category, index int) error {
	if !models.ValidCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	log, err := s.GetDailyLog(ctx, date)
	if err != nil {
		return err
	}

	entries := log.Entries[category]
	if index < 0 || index >= len(entries) {
		return nil
	}

	log.Entries[category] = append(entries[:index], entries[index+1:]...)
	if err = s.dailyLogs.Put(ctx, log); err != nil {
		return fmt.Errorf("save daily log after removal: %w", err)
	}
	return nil
}

func (s *logService) DailyTotals(ctx context.Context, date string) (models.Nutrients, error) {
	log, err := s.GetDailyLog(ctx, date)
	if err != nil {
		return models.Nutrients{}, err
	}
	return log.Totals(), nil
}
