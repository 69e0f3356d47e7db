package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msavelyeva/nutrikeep/models"
)

// searchTarget определяет, куда уходит выбранный продукт: в категорию
// дневника или в состав редактируемого блюда.
type searchTarget int

const (
	targetDay searchTarget = iota
	targetMeal
)

type searchModel struct {
	query     textinput.Model
	amount    textinput.Model
	results   []models.Product
	favorites map[string]bool
	idx       int
	searching bool
	picking   bool // выбран продукт, вводится количество
	spinner   spinner.Model

	target   searchTarget
	date     string
	category models.Category
}

func newSearchModel() searchModel {
	query := textinput.New()
	query.Placeholder = "название или штрихкод"
	query.Focus()

	amount := textinput.New()
	amount.Placeholder = "граммы"
	amount.CharLimit = 7

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return searchModel{
		query:     query,
		amount:    amount,
		favorites: map[string]bool{},
		spinner:   s,
	}
}

func (m searchModel) current() (models.Product, bool) {
	if len(m.results) == 0 || m.idx < 0 || m.idx >= len(m.results) {
		return models.Product{}, false
	}
	return m.results[m.idx], true
}

func (m searchModel) View() string {
	title := "Поиск продуктов"
	if m.target == targetMeal {
		title = "Поиск продуктов → в блюдо"
	} else if m.category != "" {
		title = fmt.Sprintf("Поиск продуктов → %s, %s", m.date, categoryTitles[m.category])
	}

	out := titleStyle.Render(title) + "\n\n"
	out += m.query.View() + "\n\n"

	switch {
	case m.searching:
		out += m.spinner.View() + " Идёт поиск...\n"
	case m.picking:
		product, _ := m.current()
		out += fmt.Sprintf("%s (%s)\n\n", product.Name, product.Brand)
		out += "Количество, г: " + m.amount.View() + "\n"
	case len(m.results) == 0:
		out += helpStyle.Render("введите запрос и нажмите enter") + "\n"
	default:
		for i, product := range m.results {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			star := "  "
			if m.favorites[product.Code] {
				star = "* "
			}
			line := fmt.Sprintf("%s%s%s", cursor, star, fitText(product.Name, 40))
			if product.Brand != "" {
				line += helpStyle.Render("  " + fitText(product.Brand, 20))
			}
			line += fmt.Sprintf("  %.0f ккал/100г", product.Nutrients.Calories)
			out += line + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter выбрать  f в избранное  esc назад")
	return out
}
