package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msavelyeva/nutrikeep/models"
)

type weightModel struct {
	entries []models.WeightEntry
	idx     int
	input   textinput.Model
	loading bool
}

func newWeightModel() weightModel {
	input := textinput.New()
	input.Placeholder = "вес, кг"
	input.CharLimit = 6
	input.Focus()
	return weightModel{input: input, loading: true}
}

func (m weightModel) current() (models.WeightEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.WeightEntry{}, false
	}
	return m.entries[m.idx], true
}

// sparkline — грубый график тренда из последних измерений.
func (m weightModel) sparkline(width int) string {
	if len(m.entries) < 2 {
		return ""
	}
	entries := m.entries
	if len(entries) > width {
		entries = entries[len(entries)-width:]
	}

	min, max := entries[0].Weight, entries[0].Weight
	for _, e := range entries {
		if e.Weight < min {
			min = e.Weight
		}
		if e.Weight > max {
			max = e.Weight
		}
	}
	if max == min {
		return strings.Repeat("▄", len(entries))
	}

	levels := []rune("▁▂▃▄▅▆▇█")
	var sb strings.Builder
	for _, e := range entries {
		level := int((e.Weight - min) / (max - min) * float64(len(levels)-1))
		sb.WriteRune(levels[level])
	}
	return sb.String()
}

func (m weightModel) View() string {
	out := titleStyle.Render("История веса") + "\n\n"
	out += "Сегодня: " + m.input.View() + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.entries) == 0 {
		out += "Измерений пока нет\n"
	} else {
		if chart := m.sparkline(40); chart != "" {
			out += chart + "\n\n"
		}
		// последние сверху
		for i := len(m.entries) - 1; i >= 0; i-- {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %.1f кг\n", cursor, m.entries[i].Date, m.entries[i].Weight)
		}
	}

	out += "\n" + helpStyle.Render("enter записать  ↑/↓ выбор  d удалить  esc меню")
	return out
}
