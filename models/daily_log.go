// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package models

// Category is one of the six fixed meal-time slots of a daily log.
type Category string

const (
	CategoryBreakfast      Category = "breakfast"
	CategoryMorningSnack   Category = "morning_snack"
	CategoryLunch          Category = "lunch"
	CategoryAfternoonSnack Category = "afternoon_snack"
	CategoryDinner         Category = "dinner"
	CategoryEveningSnack   Category = "evening_snack"
)

// Categories lists all meal-time slots in display order. Iteration order
// matters for export and rendering.
var Categories = []Category{
	CategoryBreakfast,
	CategoryMorningSnack,
	CategoryLunch,
	CategoryAfternoonSnack,
	CategoryDinner,
	CategoryEveningSnack,
}

// ValidCategory reports whether c is one of the six known meal-time slots.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DailyLog is the record of everything consumed on one date (YYYY-MM-DD).
// All six category lists are always present, even when empty: a log fetched
// for a date with no stored record is a fully-populated default, never an
// absence marker.
type DailyLog struct {
	Date    string                   `json:"date"`
	Entries map[Category][]FoodEntry `json:"entries"`
}

// NewDailyLog returns an empty log for date with all six category lists
// initialised.
func NewDailyLog(date string) *DailyLog {
	entries := make(map[Category][]FoodEntry, len(Categories))
	for _, c := range Categories {
		entries[c] = []FoodEntry{}
	}
	return &DailyLog{Date: date, Entries: entries}
}

// Normalize fills in any category list missing from a decoded log, so records
// written by older schema versions still satisfy the always-present contract.
func (l *DailyLog) Normalize() {
	if l.Entries == nil {
		l.Entries = make(map[Category][]FoodEntry, len(Categories))
	}
	for _, c := range Categories {
		if l.Entries[c] == nil {
			l.Entries[c] = []FoodEntry{}
		}
	}
}

// Totals sums the scaled nutritional contribution of every entry across all
// six categories.
func (l *DailyLog) Totals() Nutrients {
	var total Nutrients
	for _, c := range Categories {
		for _, entry := range l.Entries[c] {
			total = total.Add(entry.Scaled())
		}
	}
	return total
}

// IsEmpty reports whether no category holds any entry.
func (l *DailyLog) IsEmpty() bool {
	for _, c := range Categories {
		if len(l.Entries[c]) > 0 {
			return false
		}
	}
	return true
}
