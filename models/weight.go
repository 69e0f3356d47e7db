package models

// WeightEntry is one weight measurement, keyed by date (YYYY-MM-DD). At most
// one entry exists per date; saving again for the same date overwrites.
type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}
