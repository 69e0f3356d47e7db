package validators

import (
	"context"
	"time"

	"github.com/msavelyeva/nutrikeep/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldCode targets the barcode of a product record.
	FieldCode = "code"

	// FieldName targets the display name of a product record.
	FieldName = "name"

	// FieldMealID targets the namespaced identifier of a saved meal.
	FieldMealID = "meal_id"

	// FieldMealName targets the display name of a saved meal.
	FieldMealName = "meal_name"

	// FieldFoods targets the food list of a saved meal.
	FieldFoods = "foods"

	// FieldDate targets the YYYY-MM-DD date key of a record.
	FieldDate = "date"

	// FieldWeight targets the measured weight value of a weight entry.
	FieldWeight = "weight"

	// FieldQuantity targets the consumed amount of a food entry.
	FieldQuantity = "quantity"

	// FieldBodyData targets the height, weight, and age of a profile.
	FieldBodyData = "body_data"

	// FieldRatios targets the macronutrient ratio triple of a profile.
	FieldRatios = "ratios"
)

const dateLayout = "2006-01-02"

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.Meal:
		return v.validateMeal(ctx, value, fields...)
	case *models.Meal:
		return v.validateMeal(ctx, *value, fields...)

	case models.WeightEntry:
		return v.validateWeightEntry(ctx, value, fields...)
	case *models.WeightEntry:
		return v.validateWeightEntry(ctx, *value, fields...)

	case models.FoodEntry:
		return v.validateFoodEntry(ctx, value, fields...)
	case *models.FoodEntry:
		return v.validateFoodEntry(ctx, *value, fields...)

	case models.UserProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.UserProfile:
		return v.validateProfile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if product.Code == "" {
				return ErrEmptyProductCode
			}
		case FieldName:
			if product.Name == "" {
				return ErrEmptyProductName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateMeal(_ context.Context, meal models.Meal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMealID, FieldMealName, FieldFoods}
	}

	for _, f := range fields {
		switch f {
		case FieldMealID:
			// Пустой ID допустим: он назначается при первом сохранении.
			if meal.ID != "" && !models.IsMealID(meal.ID) {
				return ErrInvalidMealID
			}
		case FieldMealName:
			if meal.Name == "" {
				return ErrEmptyMealName
			}
		case FieldFoods:
			for _, food := range meal.Foods {
				if food.Quantity <= 0 {
					return ErrInvalidQuantity
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateWeightEntry(_ context.Context, entry models.WeightEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if _, err := time.Parse(dateLayout, entry.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldWeight:
			if entry.Weight <= 0 {
				return ErrInvalidWeight
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateFoodEntry(_ context.Context, entry models.FoodEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldQuantity:
			if entry.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateProfile(_ context.Context, profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBodyData, FieldRatios}
	}

	for _, f := range fields {
		switch f {
		case FieldBodyData:
			if profile.Height < 0 || profile.Weight < 0 || profile.Age < 0 {
				return ErrNegativeBodyData
			}
		case FieldRatios:
			for _, ratio := range []float64{profile.ProteinRatio, profile.CarbsRatio, profile.FatRatio} {
				if ratio < 0 || ratio > 1 {
					return ErrInvalidRatio
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
