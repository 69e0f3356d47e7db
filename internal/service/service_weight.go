package service

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/validators"
	"github.com/msavelyeva/nutrikeep/models"
)

type weightService struct {
	weights   store.WeightRepository
	validator validators.Validator
}

func NewWeightService(storages *store.Storages) WeightService {
	return &weightService{
		weights:   storages.WeightRepository,
		validator: validators.NewRecordValidator(),
	}
}

// RecordWeight implements WeightService. One entry per date; recording twice
// for the same date overwrites.
func (s *weightService) RecordWeight(ctx context.Context, date string, weight float64) error {
	entry := models.WeightEntry{Date: date, Weight: weight}
	if err := s.validator.Validate(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	if err := s.weights.Put(ctx, entry); err != nil {
		return fmt.Errorf("record weight: %w", err)
	}
	return nil
}

func (s *weightService) DeleteWeight(ctx context.Context, date string) error {
	if err := s.weights.Delete(ctx, date); err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	return nil
}

func (s *weightService) History(ctx context.Context) ([]models.WeightEntry, error) {
	entries, err := s.weights.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch weight history: %w", err)
	}
	return entries, nil
}

func (s *weightService) HistoryRange(ctx context.Context, fromDate, toDate string) ([]models.WeightEntry, error) {
	entries, err := s.weights.GetRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("fetch weight history range: %w", err)
	}
	return entries, nil
}
