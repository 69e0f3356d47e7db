package models

// Section names addressable in export and import requests. UserData covers
// the profile settings record plus the weight history collection.
const (
	SectionUserData         = "user_data"
	SectionDailyConsumption = "daily_consumption"
	SectionProducts         = "products"
	SectionFavorites        = "favorites"
	SectionMeals            = "meals"
)

// AllSections lists every exportable section in the order sections appear in
// the CSV layout.
var AllSections = []string{
	SectionUserData,
	SectionDailyConsumption,
	SectionProducts,
	SectionFavorites,
	SectionMeals,
}

// ExportBundle aggregates the full store for export. Each field is present
// only when the corresponding section was requested; nil slices and pointers
// marshal away entirely.
type ExportBundle struct {
	UserProfile   *UserProfile  `json:"user_profile,omitempty"`
	WeightHistory []WeightEntry `json:"weight_history,omitempty"`
	DailyLogs     []*DailyLog   `json:"daily_consumption,omitempty"`
	Products      []Product     `json:"products,omitempty"`
	Favorites     []string      `json:"favorites,omitempty"`
	Meals         []Meal        `json:"meals,omitempty"`
}

// ImportReport summarises an import run: how many parsed records were
// actually written, and which individual records failed to write. Write
// failures do not stop the import; they are collected here instead.
type ImportReport struct {
	Imported int
	Failed   []ImportFailure
}

// ImportFailure identifies one record that could not be written.
type ImportFailure struct {
	Section string
	Key     string
	Err     error
}
