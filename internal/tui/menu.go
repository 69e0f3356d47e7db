package tui

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{items: []string{
		"Дневник питания",
		"Поиск продуктов",
		"Мои блюда",
		"История веса",
		"Профиль",
		"Экспорт / импорт",
	}}
}

func (m menuModel) View() string {
	out := titleStyle.Render("NutriKeep") + "\n\nВыберите раздел:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter открыть  q выход")
	return out
}
