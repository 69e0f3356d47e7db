package tui

import "github.com/msavelyeva/nutrikeep/models"

type dayLoadedMsg struct {
	log    *models.DailyLog
	totals models.Nutrients
	goal   float64
	err    error
}

type entryMutatedMsg struct {
	date string
	err  error
}

type searchDoneMsg struct {
	results []models.Product
	err     error
}

type favoriteMarksMsg struct {
	marks map[string]bool
	err   error
}

type favoriteToggledMsg struct {
	code      string
	favorited bool
	err       error
}

type mealsLoadedMsg struct {
	meals []models.Meal
	err   error
}

type mealSavedMsg struct {
	meal models.Meal
	err  error
}

type mealDeletedMsg struct {
	err error
}

type weightLoadedMsg struct {
	entries []models.WeightEntry
	err     error
}

type weightMutatedMsg struct {
	err error
}

type profileLoadedMsg struct {
	profile models.UserProfile
	err     error
}

type profileSavedMsg struct {
	err error
}

type exportDoneMsg struct {
	path      string
	clipboard bool
	err       error
}

type importDoneMsg struct {
	report models.ImportReport
	err    error
}

type wipeDoneMsg struct {
	err error
}
