package transfer

import (
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/msavelyeva/nutrikeep/models"
)

// CSV section header lines and their fixed column rows. Sections always
// appear in this order, separated by one blank line. The product cache has
// no CSV section: cached barcode lookups are device-local state and only
// round-trip through JSON.
const (
	sectionProfile   = "--- USER PROFILE ---"
	sectionWeight    = "--- WEIGHT HISTORY ---"
	sectionDaily     = "--- DAILY CONSUMPTION ---"
	sectionMeals     = "--- SAVED MEALS ---"
	sectionFavorites = "--- FAVORITES ---"
)

var csvColumns = map[string][]string{
	sectionProfile:   {"Height", "Weight", "Gender", "DailyCalories", "ProteinRatio", "CarbsRatio", "FatRatio"},
	sectionWeight:    {"Date", "Weight"},
	sectionDaily:     {"Date", "Category", "ProductName", "Quantity", "Unit", "Calories", "Carbs", "Fat", "Protein"},
	sectionMeals:     {"MealID", "MealName", "FoodName", "Quantity", "Unit"},
	sectionFavorites: {"ProductCode"},
}

func encodeCSV(bundle models.ExportBundle) ([]byte, error) {
	var blocks []string

	if bundle.UserProfile != nil {
		p := bundle.UserProfile
		blocks = append(blocks, encodeSection(sectionProfile, [][]string{{
			formatFloat(p.Height),
			formatFloat(p.Weight),
			p.Gender,
			formatFloat(p.DailyCalories),
			formatFloat(p.ProteinRatio),
			formatFloat(p.CarbsRatio),
			formatFloat(p.FatRatio),
		}}))
	}

	if bundle.WeightHistory != nil {
		rows := make([][]string, 0, len(bundle.WeightHistory))
		for _, entry := range bundle.WeightHistory {
			rows = append(rows, []string{entry.Date, formatFloat(entry.Weight)})
		}
		blocks = append(blocks, encodeSection(sectionWeight, rows))
	}

	if bundle.DailyLogs != nil {
		logs := slices.Clone(bundle.DailyLogs)
		slices.SortFunc(logs, func(a, b *models.DailyLog) int {
			return strings.Compare(a.Date, b.Date)
		})

		var rows [][]string
		for _, log := range logs {
			for _, category := range models.Categories {
				for _, entry := range log.Entries[category] {
					rows = append(rows, []string{
						log.Date,
						string(category),
						entry.Product.Name,
						formatFloat(entry.Quantity),
						entry.Unit,
						formatFloat(entry.Product.Nutrients.Calories),
						formatFloat(entry.Product.Nutrients.Carbs),
						formatFloat(entry.Product.Nutrients.Fat),
						formatFloat(entry.Product.Nutrients.Protein),
					})
				}
			}
		}
		blocks = append(blocks, encodeSection(sectionDaily, rows))
	}

	if bundle.Meals != nil {
		var rows [][]string
		for _, meal := range bundle.Meals {
			for _, food := range meal.Foods {
				rows = append(rows, []string{
					meal.ID,
					meal.Name,
					food.Product.Name,
					formatFloat(food.Quantity),
					food.Unit,
				})
			}
		}
		blocks = append(blocks, encodeSection(sectionMeals, rows))
	}

	if bundle.Favorites != nil {
		rows := make([][]string, 0, len(bundle.Favorites))
		for _, code := range bundle.Favorites {
			rows = append(rows, []string{code})
		}
		blocks = append(blocks, encodeSection(sectionFavorites, rows))
	}

	return []byte(strings.Join(blocks, "\n")), nil
}

func encodeSection(header string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	w := csv.NewWriter(&sb)
	_ = w.Write(csvColumns[header])
	_ = w.WriteAll(rows)
	w.Flush()

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decodeCSV(data []byte) (models.ExportBundle, error) {
	sections, err := splitSections(string(data))
	if err != nil {
		return models.ExportBundle{}, err
	}

	var bundle models.ExportBundle
	for _, section := range sections {
		switch section.header {
		case sectionProfile:
			bundle.UserProfile, err = decodeProfile(section)
		case sectionWeight:
			bundle.WeightHistory, err = decodeWeight(section)
		case sectionDaily:
			bundle.DailyLogs, err = decodeDailyLogs(section)
		case sectionMeals:
			bundle.Meals, err = decodeMeals(section)
		case sectionFavorites:
			bundle.Favorites, err = decodeFavorites(section)
		}
		if err != nil {
			return models.ExportBundle{}, err
		}
	}
	return bundle, nil
}

type csvSection struct {
	header string
	line   int // 1-based line number of the header line
	rows   [][]string
}

// splitSections cuts the payload into sections and validates every section
// header and column row up front, so callers see a parse error before any
// record is materialised.
func splitSections(payload string) ([]csvSection, error) {
	lines := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")

	var sections []csvSection
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		if _, known := csvColumns[line]; !known {
			return nil, fmt.Errorf("%w: line %d: expected a section header, got %q", ErrMalformedPayload, i+1, lines[i])
		}
		section := csvSection{header: line, line: i + 1}

		var raw []string
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "" {
				break
			}
			raw = append(raw, lines[i])
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("%w: section %q has no column header row", ErrMalformedPayload, section.header)
		}

		rows, err := csv.NewReader(strings.NewReader(strings.Join(raw, "\n"))).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: section %q: %s", ErrMalformedPayload, section.header, err)
		}
		if !slices.Equal(rows[0], csvColumns[section.header]) {
			return nil, fmt.Errorf("%w: section %q: unexpected columns %v", ErrMalformedPayload, section.header, rows[0])
		}
		section.rows = rows[1:]
		sections = append(sections, section)
	}
	return sections, nil
}

func (s csvSection) parseFloat(row []string, column int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(row[column]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: section %q: column %q: %s",
			ErrMalformedPayload, s.header, csvColumns[s.header][column], err)
	}
	return v, nil
}

func decodeProfile(s csvSection) (*models.UserProfile, error) {
	if len(s.rows) == 0 {
		return nil, nil
	}

	row := s.rows[0]
	var profile models.UserProfile
	var err error
	for i, dst := range []*float64{
		&profile.Height, &profile.Weight, nil,
		&profile.DailyCalories, &profile.ProteinRatio, &profile.CarbsRatio, &profile.FatRatio,
	} {
		if dst == nil {
			profile.Gender = row[i]
			continue
		}
		if *dst, err = s.parseFloat(row, i); err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

func decodeWeight(s csvSection) ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0, len(s.rows))
	for _, row := range s.rows {
		weight, err := s.parseFloat(row, 1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.WeightEntry{Date: row[0], Weight: weight})
	}
	return entries, nil
}

// decodeDailyLogs re-groups flattened rows into one log per date. Row order
// within a category is preserved; dates keep first-seen order. Rows carry no
// barcode, so re-imported entries reference their product by name only.
func decodeDailyLogs(s csvSection) ([]*models.DailyLog, error) {
	byDate := make(map[string]*models.DailyLog)
	var logs []*models.DailyLog

	for _, row := range s.rows {
		category := models.Category(row[1])
		if !models.ValidCategory(category) {
			return nil, fmt.Errorf("%w: section %q: unknown category %q", ErrMalformedPayload, s.header, row[1])
		}

		entry := models.FoodEntry{
			Product: models.Product{Name: row[2]},
			Unit:    row[4],
		}
		var err error
		for i, dst := range map[int]*float64{
			3: &entry.Quantity,
			5: &entry.Product.Nutrients.Calories,
			6: &entry.Product.Nutrients.Carbs,
			7: &entry.Product.Nutrients.Fat,
			8: &entry.Product.Nutrients.Protein,
		} {
			if *dst, err = s.parseFloat(row, i); err != nil {
				return nil, err
			}
		}

		log, ok := byDate[row[0]]
		if !ok {
			log = models.NewDailyLog(row[0])
			byDate[row[0]] = log
			logs = append(logs, log)
		}
		log.Entries[category] = append(log.Entries[category], entry)
	}
	return logs, nil
}

// decodeMeals re-groups flattened rows into one meal per id, keeping
// first-seen meal order and row order within a meal.
func decodeMeals(s csvSection) ([]models.Meal, error) {
	byID := make(map[string]int)
	var meals []models.Meal

	for _, row := range s.rows {
		quantity, err := s.parseFloat(row, 3)
		if err != nil {
			return nil, err
		}

		idx, ok := byID[row[0]]
		if !ok {
			idx = len(meals)
			byID[row[0]] = idx
			meals = append(meals, models.Meal{ID: row[0], Name: row[1]})
		}
		meals[idx].Foods = append(meals[idx].Foods, models.FoodEntry{
			Product:  models.Product{Name: row[2]},
			Quantity: quantity,
			Unit:     row[4],
		})
	}
	return meals, nil
}

func decodeFavorites(s csvSection) ([]string, error) {
	codes := make([]string, 0, len(s.rows))
	for _, row := range s.rows {
		codes = append(codes, row[0])
	}
	return codes, nil
}
