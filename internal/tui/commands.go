package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msavelyeva/nutrikeep/models"
)

func (m appModel) cmdLoadDay() tea.Cmd {
	date := m.day.date
	return func() tea.Msg {
		dayLog, err := m.services.LogService.GetDailyLog(m.ctx, date)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		totals, err := m.services.LogService.DailyTotals(m.ctx, date)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		profile, err := m.services.ProfileService.GetProfile(m.ctx)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		return dayLoadedMsg{log: dayLog, totals: totals, goal: profile.DailyCalories}
	}
}

func (m appModel) cmdAddEntry(date string, category models.Category, entry models.FoodEntry) tea.Cmd {
	return func() tea.Msg {
		err := m.services.LogService.AddFoodItem(m.ctx, date, category, entry)
		return entryMutatedMsg{date: date, err: err}
	}
}

func (m appModel) cmdRemoveEntry(pos dayPosition) tea.Cmd {
	date := m.day.date
	return func() tea.Msg {
		err := m.services.LogService.RemoveFoodItem(m.ctx, date, pos.category, pos.index)
		return entryMutatedMsg{date: date, err: err}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.services.CatalogService.SearchProducts(m.ctx, query, 1)
		return searchDoneMsg{results: results, err: err}
	}
}

// cmdLoadFavoriteMarks подгружает отметки избранного для показанных
// результатов поиска.
func (m appModel) cmdLoadFavoriteMarks(results []models.Product) tea.Cmd {
	return func() tea.Msg {
		codes, err := m.services.FavoriteService.GetFavorites(m.ctx)
		if err != nil {
			return favoriteMarksMsg{err: err}
		}
		favorited := make(map[string]bool, len(codes))
		for _, code := range codes {
			favorited[code] = true
		}
		marks := make(map[string]bool, len(results))
		for _, product := range results {
			marks[product.Code] = favorited[product.Code]
		}
		return favoriteMarksMsg{marks: marks}
	}
}

func (m appModel) cmdToggleFavorite(code string) tea.Cmd {
	return func() tea.Msg {
		favorited, err := m.services.FavoriteService.Toggle(m.ctx, code)
		return favoriteToggledMsg{code: code, favorited: favorited, err: err}
	}
}

func (m appModel) cmdLoadMeals() tea.Cmd {
	return func() tea.Msg {
		meals, err := m.services.MealService.GetAllMeals(m.ctx)
		return mealsLoadedMsg{meals: meals, err: err}
	}
}

func (m appModel) cmdSaveMeal(meal models.Meal) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.services.MealService.SaveMeal(m.ctx, meal)
		return mealSavedMsg{meal: saved, err: err}
	}
}

func (m appModel) cmdDeleteMeal(id string) tea.Cmd {
	return func() tea.Msg {
		return mealDeletedMsg{err: m.services.MealService.DeleteMeal(m.ctx, id)}
	}
}

func (m appModel) cmdLoadWeight() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.WeightService.History(m.ctx)
		return weightLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdRecordWeight(date string, weight float64) tea.Cmd {
	return func() tea.Msg {
		err := m.services.WeightService.RecordWeight(m.ctx, date, weight)
		return weightMutatedMsg{err: err}
	}
}

func (m appModel) cmdDeleteWeight(date string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.WeightService.DeleteWeight(m.ctx, date)
		return weightMutatedMsg{err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.services.ProfileService.GetProfile(m.ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdSaveProfile(profile models.UserProfile) tea.Cmd {
	return func() tea.Msg {
		return profileSavedMsg{err: m.services.ProfileService.SaveProfile(m.ctx, profile)}
	}
}

func (m appModel) cmdExport(toClipboard bool) tea.Cmd {
	format := m.transfer.format
	return func() tea.Msg {
		data, err := m.services.TransferService.Export(m.ctx, nil, format)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		if toClipboard {
			if err := clipboard.WriteAll(string(data)); err != nil {
				return exportDoneMsg{err: fmt.Errorf("буфер обмена недоступен: %w", err)}
			}
			return exportDoneMsg{clipboard: true}
		}

		path := fmt.Sprintf("nutrikeep_export_%s.%s", time.Now().Format("20060102"), format)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	format := m.transfer.format
	override := m.transfer.override
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		report, err := m.services.TransferService.Import(m.ctx, data, format, override)
		return importDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdWipe() tea.Cmd {
	return func() tea.Msg {
		return wipeDoneMsg{err: m.services.TransferService.ClearAllData(m.ctx)}
	}
}
