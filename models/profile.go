package models

// UserProfile holds the user's body data and daily nutrition goals. It lives
// in the settings table (key "user_profile") rather than a record collection,
// but participates in export and import like any collection.
type UserProfile struct {
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age,omitempty"`
	DailyCalories float64 `json:"daily_calories"`
	ProteinRatio  float64 `json:"protein_ratio"`
	CarbsRatio    float64 `json:"carbs_ratio"`
	FatRatio      float64 `json:"fat_ratio"`
}
