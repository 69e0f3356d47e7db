package models

// Units a FoodEntry quantity can be expressed in. UnitMeal marks an entry
// that references a saved Meal: the meal id is stored in Product.Code and the
// embedded nutrients are the meal's totals per 100g-equivalent at the time of
// the last meal save.
const (
	UnitGram  = "g"
	UnitPiece = "piece"
	UnitMeal  = "meal"
)

// FoodEntry is one consumed item inside a daily log category or a saved meal.
// Product is a denormalized snapshot, not a reference: it is copied at the
// time the entry is created and refreshed by cascade updates whenever the
// canonical product or meal is edited.
type FoodEntry struct {
	Product  Product `json:"product"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// IsMealRef reports whether the entry references a saved meal rather than a
// raw product quantity.
func (e FoodEntry) IsMealRef() bool {
	return e.Unit == UnitMeal
}

// Scaled returns the entry's actual nutritional contribution. Snapshot values
// are per 100g for gram quantities; for pieces and meal references the
// snapshot already describes a single unit, so quantity multiplies directly.
func (e FoodEntry) Scaled() Nutrients {
	if e.Unit == UnitGram {
		return e.Product.Nutrients.Scale(e.Quantity / 100)
	}
	return e.Product.Nutrients.Scale(e.Quantity)
}

// RefreshFrom overwrites the snapshot's descriptive and nutritional fields
// from the canonical product. Quantity and unit are never touched. Returns
// true when any field actually changed, so callers can skip writes for
// records a cascade did not modify.
func (e *FoodEntry) RefreshFrom(p Product) bool {
	if e.Product.Name == p.Name &&
		e.Product.Brand == p.Brand &&
		e.Product.Nutrients == p.Nutrients {
		return false
	}

	e.Product.Name = p.Name
	e.Product.Brand = p.Brand
	e.Product.Nutrients = p.Nutrients
	return true
}
