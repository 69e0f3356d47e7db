// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package models

import "time"

// Nutrients holds nutritional values per 100 grams of product, following the
// Open Food Facts field layout.
type Nutrients struct {
	Calories float64 `json:"energy-kcal_100g"`
	Protein  float64 `json:"proteins_100g"`
	Carbs    float64 `json:"carbohydrates_100g"`
	Fat      float64 `json:"fat_100g"`
	Fiber    float64 `json:"fiber_100g"`
	Sugar    float64 `json:"sugars_100g"`
	Sodium   float64 `json:"sodium_100g"`
}

// Scale multiplies every nutrient by factor. Used to turn per-100g values
// into the contribution of a concrete quantity.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sugar:    n.Sugar * factor,
		Sodium:   n.Sodium * factor,
	}
}

// Add sums two nutrient values field by field.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Fiber:    n.Fiber + other.Fiber,
		Sugar:    n.Sugar + other.Sugar,
		Sodium:   n.Sodium + other.Sodium,
	}
}

// Product is a cached nutritional facts record keyed by barcode. Once a user
// edits a product, the cached copy becomes the source of truth and is no
// longer refreshed from the remote food database.
type Product struct {
	Code        string    `json:"code"`
	Name        string    `json:"product_name"`
	Brand       string    `json:"brands"`
	Nutrients   Nutrients `json:"nutriments"`
	ServingSize float64   `json:"serving_quantity,omitempty"`
	ServingUnit string    `json:"serving_quantity_unit,omitempty"`
	UserEdited  bool      `json:"user_edited,omitempty"`
	FetchedAt   time.Time `json:"fetched_at,omitzero"`
}
