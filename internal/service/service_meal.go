package service

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/utils"
	"github.com/msavelyeva/nutrikeep/internal/validators"
	"github.com/msavelyeva/nutrikeep/models"
)

type mealService struct {
	meals     store.MealRepository
	dailyLogs store.DailyLogRepository
	validator validators.Validator
}

func NewMealService(storages *store.Storages) MealService {
	return &mealService{
		meals:     storages.MealRepository,
		dailyLogs: storages.DailyLogRepository,
		validator: validators.NewRecordValidator(),
	}
}

func (s *mealService) GetMeal(ctx context.Context, id string) (models.Meal, error) {
	meal, err := s.meals.Get(ctx, id)
	if err != nil {
		return models.Meal{}, fmt.Errorf("get meal: %w", err)
	}
	return meal, nil
}

func (s *mealService) GetAllMeals(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.meals.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// SaveMeal implements MealService. Every save persists immediately and
// refreshes daily log entries that reference the meal, so historical days
// composed from the meal track its current recipe.
func (s *mealService) SaveMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	if err := s.validator.Validate(ctx, meal); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}
	if meal.ID == "" {
		meal.ID = utils.NewMealID()
	}

	if err := s.meals.Put(ctx, meal); err != nil {
		return models.Meal{}, fmt.Errorf("save meal: %w", err)
	}

	if err := s.updateMealInLogs(ctx, meal); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string) error {
	if err := s.meals.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

// MealTotals implements MealService.
func (s *mealService) MealTotals(meal models.Meal) models.Nutrients {
	var total models.Nutrients
	for _, food := range meal.Foods {
		total = total.Add(food.Scaled())
	}
	return total
}

// updateMealInLogs refreshes every daily log entry referencing the meal:
// unit "meal" entries whose embedded code equals the meal id. The embedded
// snapshot carries the meal's name and current totals. Unchanged records are
// not written back.
func (s *mealService) updateMealInLogs(ctx context.Context, meal models.Meal) error {
	canonical := models.Product{
		Code:      meal.ID,
		Name:      meal.Name,
		Nutrients: s.MealTotals(meal),
	}

	err := s.dailyLogs.ForEach(ctx, func(log *models.DailyLog) (bool, error) {
		changed := false
		for _, category := range models.Categories {
			entries := log.Entries[category]
			for i := range entries {
				if !entries[i].IsMealRef() || entries[i].Product.Code != meal.ID {
					continue
				}
				if entries[i].RefreshFrom(canonical) {
					changed = true
				}
			}
		}
		return changed, nil
	})
	if err != nil {
		return fmt.Errorf("%w: meal %s in daily logs: %v", ErrCascadeScan, meal.ID, err)
	}
	return nil
}
