package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/msavelyeva/nutrikeep/models"
)

const dateLayout = "2006-01-02"

var categoryTitles = map[models.Category]string{
	models.CategoryBreakfast:      "Завтрак",
	models.CategoryMorningSnack:   "Утренний перекус",
	models.CategoryLunch:          "Обед",
	models.CategoryAfternoonSnack: "Полдник",
	models.CategoryDinner:         "Ужин",
	models.CategoryEveningSnack:   "Вечерний перекус",
}

func shiftDate(date string, days int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Now().Format(dateLayout)
	}
	return t.AddDate(0, 0, days).Format(dateLayout)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatEntry(entry models.FoodEntry) string {
	name := entry.Product.Name
	if name == "" {
		name = entry.Product.Code
	}
	scaled := entry.Scaled()
	return fmt.Sprintf("%s  %s %s  (%.0f ккал)", name, formatAmount(entry.Quantity), entry.Unit, scaled.Calories)
}

func formatNutrients(n models.Nutrients) string {
	return fmt.Sprintf("%.0f ккал   Б %.1f   Ж %.1f   У %.1f", n.Calories, n.Protein, n.Fat, n.Carbs)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
