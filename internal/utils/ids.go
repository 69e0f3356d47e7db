package utils

import (
	"github.com/google/uuid"

	"github.com/msavelyeva/nutrikeep/models"
)

// NewMealID generates a namespaced meal identifier. UUIDv7 keeps ids
// time-sortable; the prefix keeps the meal key space disjoint from product
// barcodes so cascade matching can never confuse the two.
func NewMealID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return models.MealIDPrefix + uuid.NewString()
	}

	return models.MealIDPrefix + v7.String()
}
