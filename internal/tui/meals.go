package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msavelyeva/nutrikeep/models"
)

type mealsModel struct {
	meals   []models.Meal
	idx     int
	loading bool
}

func newMealsModel() mealsModel {
	return mealsModel{loading: true}
}

func (m mealsModel) current() (models.Meal, bool) {
	if len(m.meals) == 0 || m.idx < 0 || m.idx >= len(m.meals) {
		return models.Meal{}, false
	}
	return m.meals[m.idx], true
}

func (m mealsModel) View() string {
	out := titleStyle.Render("Мои блюда") + "\n\n"

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.meals) == 0:
		out += "Блюд пока нет\n"
	default:
		for i, meal := range m.meals {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, fitText(meal.Name, 30),
				helpStyle.Render(fmt.Sprintf("%d инг.", len(meal.Foods))))
		}
	}

	out += "\n" + helpStyle.Render("enter изменить  a новое  d удалить  esc меню")
	return out
}

// mealFormModel редактирует одно блюдо. Состав пополняется через экран
// поиска, каждое изменение сохраняется сразу.
type mealFormModel struct {
	meal   models.Meal
	inputs []textinput.Model // название, описание
	focus  int
	totals models.Nutrients
}

func newMealFormModel(meal models.Meal) mealFormModel {
	name := textinput.New()
	name.Placeholder = "название"
	name.SetValue(meal.Name)
	name.Focus()

	description := textinput.New()
	description.Placeholder = "описание"
	description.SetValue(meal.Description)

	return mealFormModel{meal: meal, inputs: []textinput.Model{name, description}}
}

func (m mealFormModel) View() string {
	title := "Новое блюдо"
	if m.meal.ID != "" {
		title = "Блюдо: " + m.meal.Name
	}
	out := titleStyle.Render(title) + "\n\n"
	out += "Название: " + m.inputs[0].View() + "\n"
	out += "Описание: " + m.inputs[1].View() + "\n\n"

	out += titleStyle.Render("Состав") + "\n"
	if len(m.meal.Foods) == 0 {
		out += helpStyle.Render("пусто") + "\n"
	} else {
		for _, food := range m.meal.Foods {
			out += "  " + formatEntry(food) + "\n"
		}
	}

	out += "\nИтого: " + formatNutrients(m.totals)
	out += "\n\n" + helpStyle.Render("tab поля  a добавить продукт  enter сохранить  esc назад")
	return out
}
