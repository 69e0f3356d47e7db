package tui

import (
	"fmt"

	"github.com/msavelyeva/nutrikeep/models"
)

// dayPosition адресует запись в дневнике: категория и индекс внутри неё.
type dayPosition struct {
	category models.Category
	index    int
}

type dayModel struct {
	date    string
	log     *models.DailyLog
	totals  models.Nutrients
	goal    float64
	idx     int
	loading bool
}

func newDayModel(date string) dayModel {
	return dayModel{date: date, loading: true}
}

// positions возвращает все записи дня в порядке отображения. Пустые
// категории тоже занимают позицию, чтобы в них можно было добавлять.
func (m dayModel) positions() []dayPosition {
	if m.log == nil {
		return nil
	}
	var ps []dayPosition
	for _, category := range models.Categories {
		entries := m.log.Entries[category]
		if len(entries) == 0 {
			ps = append(ps, dayPosition{category: category, index: -1})
			continue
		}
		for i := range entries {
			ps = append(ps, dayPosition{category: category, index: i})
		}
	}
	return ps
}

func (m dayModel) current() (dayPosition, bool) {
	ps := m.positions()
	if len(ps) == 0 || m.idx < 0 || m.idx >= len(ps) {
		return dayPosition{}, false
	}
	return ps[m.idx], true
}

func (m dayModel) View() string {
	out := titleStyle.Render("Дневник  "+m.date) + "\n\n"

	if m.loading || m.log == nil {
		out += "Загрузка...\n"
		return out
	}

	ps := m.positions()
	cursorAt := -1
	if m.idx >= 0 && m.idx < len(ps) {
		cursorAt = m.idx
	}

	pos := 0
	for _, category := range models.Categories {
		out += titleStyle.Render(categoryTitles[category]) + "\n"
		entries := m.log.Entries[category]
		if len(entries) == 0 {
			cursor := "  "
			if pos == cursorAt {
				cursor = "> "
			}
			out += cursor + helpStyle.Render("пусто") + "\n"
			pos++
		} else {
			for _, entry := range entries {
				cursor := "  "
				if pos == cursorAt {
					cursor = "> "
				}
				out += cursor + formatEntry(entry) + "\n"
				pos++
			}
		}
		out += "\n"
	}

	out += "Итого: " + formatNutrients(m.totals)
	if m.goal > 0 {
		out += fmt.Sprintf("   цель %.0f ккал", m.goal)
	}
	out += "\n\n" + helpStyle.Render("←/→ день  ↑/↓ запись  a добавить  d удалить  esc меню  q выход")
	return out
}
