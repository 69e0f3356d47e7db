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

type mealRepository struct {
	*DB
	logger *logger.Logger
}

func NewMealRepository(db *DB, logger *logger.Logger) MealRepository {
	return &mealRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *mealRepository) Get(ctx context.Context, id string) (models.Meal, error) {
	log := logger.FromContext(ctx)

	var meal models.Meal
	var foodsJSON string
	err := r.DB.QueryRowContext(ctx, getMeal, id).Scan(&meal.ID, &meal.Name, &meal.Description, &foodsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Meal{}, ErrMealNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "mealRepository.Get").
			Str("meal_id", id).
			Msg("failed to query meal")
		return models.Meal{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(foodsJSON), &meal.Foods); err != nil {
		return models.Meal{}, fmt.Errorf("%w (meal_id=%s): %v", ErrDecodingRecord, id, err)
	}

	return meal, nil
}

func (r *mealRepository) Put(ctx context.Context, meal models.Meal) error {
	log := logger.FromContext(ctx)

	foods := meal.Foods
	if foods == nil {
		foods = []models.FoodEntry{}
	}
	foodsJSON, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("failed to encode meal foods (meal_id=%s): %w", meal.ID, err)
	}

	if _, err = r.DB.ExecContext(ctx, upsertMeal, meal.ID, meal.Name, meal.Description, string(foodsJSON)); err != nil {
		log.Err(err).
			Str("func", "mealRepository.Put").
			Str("meal_id", meal.ID).
			Msg("failed to execute upsert for meal")
		return fmt.Errorf("failed to save meal (meal_id=%s): %w", meal.ID, err)
	}

	return nil
}

func (r *mealRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteMeal, id); err != nil {
		log.Err(err).
			Str("func", "mealRepository.Delete").
			Str("meal_id", id).
			Msg("failed to execute delete for meal")
		return fmt.Errorf("failed to delete meal (meal_id=%s): %w", id, err)
	}

	return nil
}

func (r *mealRepository) GetAll(ctx context.Context) ([]models.Meal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllMeals)
	if err != nil {
		log.Err(err).
			Str("func", "mealRepository.GetAll").
			Msg("failed to query all meals")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var meal models.Meal
		var foodsJSON string
		if scanErr := rows.Scan(&meal.ID, &meal.Name, &meal.Description, &foodsJSON); scanErr != nil {
			log.Err(scanErr).
				Str("func", "mealRepository.GetAll").
				Msg("failed to scan meal row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}

		if decErr := json.Unmarshal([]byte(foodsJSON), &meal.Foods); decErr != nil {
			return nil, fmt.Errorf("%w (meal_id=%s): %v", ErrDecodingRecord, meal.ID, decErr)
		}
		meals = append(meals, meal)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mealRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating meal rows: %w", rowsErr)
	}

	return meals, nil
}

// ForEach mirrors [dailyLogRepository.ForEach] for the meal collection.
func (r *mealRepository) ForEach(ctx context.Context, visit MealVisitor) error {
	log := logger.FromContext(ctx)

	meals, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range meals {
		changed, visitErr := visit(&meals[i])
		if visitErr != nil {
			return fmt.Errorf("meal scan visitor failed (meal_id=%s): %w", meals[i].ID, visitErr)
		}
		if !changed {
			continue
		}

		foodsJSON, encErr := json.Marshal(meals[i].Foods)
		if encErr != nil {
			return fmt.Errorf("failed to encode meal foods (meal_id=%s): %w", meals[i].ID, encErr)
		}

		if _, execErr := r.DB.ExecContext(ctx, updateMealFoods, string(foodsJSON), meals[i].ID); execErr != nil {
			log.Err(execErr).
				Str("func", "mealRepository.ForEach").
				Str("meal_id", meals[i].ID).
				Msg("failed to write back scanned meal")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, execErr)
		}
	}

	return nil
}
