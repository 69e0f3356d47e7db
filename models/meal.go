package models

import "strings"

// MealIDPrefix namespaces meal ids away from product barcodes. Barcodes are
// numeric strings, but nothing enforces that, so the prefix guarantees a meal
// edit cascade can never match a raw product entry and vice versa.
const MealIDPrefix = "meal-"

// Meal is a named, user-composed list of food entries. Entries embed product
// snapshots the same way daily log entries do, and are refreshed by the same
// cascade when a referenced product is edited.
type Meal struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Foods       []FoodEntry `json:"foods"`
}

// IsMealID reports whether id belongs to the meal key space.
func IsMealID(id string) bool {
	return strings.HasPrefix(id, MealIDPrefix)
}
