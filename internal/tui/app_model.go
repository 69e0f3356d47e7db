// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msavelyeva/nutrikeep/internal/service"
	"github.com/msavelyeva/nutrikeep/internal/transfer"
	"github.com/msavelyeva/nutrikeep/models"
)

type screen int

const (
	screenMenu screen = iota
	screenDay
	screenSearch
	screenMeals
	screenMealForm
	screenWeight
	screenProfile
	screenTransfer
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteEntry
	confirmDeleteMeal
	confirmDeleteWeight
	confirmWipe
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	currentScreen screen

	menu     menuModel
	day      dayModel
	search   searchModel
	meals    mealsModel
	mealForm mealFormModel
	weight   weightModel
	profile  profileModel
	transfer transferModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingAction confirmAction

	// экран, из которого открыт поиск
	searchReturn screen

	err error
}

func newAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		day:           newDayModel(time.Now().Format(dateLayout)),
		search:        newSearchModel(),
		meals:         newMealsModel(),
		weight:        newWeightModel(),
		profile:       newProfileModel(),
		transfer:      newTransferModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(keyMsg)
		}
	}

	if handled, model, cmd := m.updateFromMessage(msg); handled {
		return model, cmd
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenDay:
		return m.updateDay(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenMeals:
		return m.updateMeals(msg)
	case screenMealForm:
		return m.updateMealForm(msg)
	case screenWeight:
		return m.updateWeight(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenTransfer:
		return m.updateTransfer(msg)
	}
	return m, nil
}

// updateFromMessage обрабатывает результаты асинхронных команд независимо от
// текущего экрана.
func (m appModel) updateFromMessage(msg tea.Msg) (bool, tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.day.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.day.log = msg.log
		m.day.totals = msg.totals
		m.day.goal = msg.goal
		if ps := m.day.positions(); m.day.idx >= len(ps) {
			m.day.idx = len(ps) - 1
		}
		if m.day.idx < 0 {
			m.day.idx = 0
		}
		return true, m, nil

	case entryMutatedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.currentScreen = screenDay
		return true, m, m.cmdLoadDay()

	case searchDoneMsg:
		m.search.searching = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.search.results = msg.results
		m.search.idx = 0
		return true, m, m.cmdLoadFavoriteMarks(msg.results)

	case favoriteMarksMsg:
		if msg.err != nil {
			return true, m, nil
		}
		m.search.favorites = msg.marks
		return true, m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.search.favorites[msg.code] = msg.favorited
		return true, m, nil

	case mealsLoadedMsg:
		m.meals.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.meals.meals = msg.meals
		if m.meals.idx >= len(m.meals.meals) {
			m.meals.idx = len(m.meals.meals) - 1
		}
		if m.meals.idx < 0 {
			m.meals.idx = 0
		}
		return true, m, nil

	case mealSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.currentScreen = screenMeals
		m.meals.loading = true
		return true, m, m.cmdLoadMeals()

	case mealDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.meals.loading = true
		return true, m, m.cmdLoadMeals()

	case weightLoadedMsg:
		m.weight.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.weight.entries = msg.entries
		// курсор на последнем измерении, оно сверху
		m.weight.idx = len(m.weight.entries) - 1
		if m.weight.idx < 0 {
			m.weight.idx = 0
		}
		return true, m, nil

	case weightMutatedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.weight.input.SetValue("")
		return true, m, m.cmdLoadWeight()

	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.profile.fill(msg.profile)
		return true, m, nil

	case profileSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.profile.status = "Сохранено"
		return true, m, nil

	case exportDoneMsg:
		m.transfer.working = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		if msg.clipboard {
			m.transfer.status = "Экспорт скопирован в буфер обмена"
		} else {
			m.transfer.status = "Экспортировано в " + msg.path
		}
		return true, m, nil

	case importDoneMsg:
		m.transfer.working = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.transfer.status = fmt.Sprintf("Импортировано записей: %d", msg.report.Imported)
		if len(msg.report.Failed) > 0 {
			m.transfer.status += fmt.Sprintf(", с ошибками: %d", len(msg.report.Failed))
		}
		return true, m, nil

	case wipeDoneMsg:
		m.transfer.working = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return true, m, nil
		}
		m.transfer.status = "Все данные стёрты"
		m.day = newDayModel(time.Now().Format(dateLayout))
		m.meals = newMealsModel()
		m.weight = newWeightModel()
		m.profile = newProfileModel()
		return true, m, nil

	case spinner.TickMsg:
		if m.search.searching {
			var cmd tea.Cmd
			m.search.spinner, cmd = m.search.spinner.Update(msg)
			return true, m, cmd
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.yes) {
		action := m.pendingAction
		m.showConfirm = false
		m.pendingAction = confirmNone

		switch action {
		case confirmDeleteEntry:
			pos, ok := m.day.current()
			if !ok || pos.index < 0 {
				return m, nil
			}
			return m, m.cmdRemoveEntry(pos)
		case confirmDeleteMeal:
			meal, ok := m.meals.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteMeal(meal.ID)
		case confirmDeleteWeight:
			entry, ok := m.weight.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteWeight(entry.Date)
		case confirmWipe:
			m.transfer.working = true
			return m, m.cmdWipe()
		}
		return m, nil
	}
	if key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc) {
		m.showConfirm = false
		m.pendingAction = confirmNone
	}
	return m, nil
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenDay
			m.day.loading = true
			return m, m.cmdLoadDay()
		case 1:
			m.searchReturn = screenMenu
			m.search = newSearchModel()
			m.search.date = m.day.date
			m.search.category = models.CategoryBreakfast
			m.currentScreen = screenSearch
			return m, nil
		case 2:
			m.currentScreen = screenMeals
			m.meals.loading = true
			return m, m.cmdLoadMeals()
		case 3:
			m.currentScreen = screenWeight
			m.weight.loading = true
			return m, m.cmdLoadWeight()
		case 4:
			m.currentScreen = screenProfile
			m.profile.loading = true
			return m, m.cmdLoadProfile()
		case 5:
			m.currentScreen = screenTransfer
			m.transfer.status = ""
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		m.day = newDayModel(shiftDate(m.day.date, -1))
		return m, m.cmdLoadDay()
	case key.Matches(keyMsg, keys.right):
		m.day = newDayModel(shiftDate(m.day.date, 1))
		return m, m.cmdLoadDay()
	case key.Matches(keyMsg, keys.up):
		if m.day.idx > 0 {
			m.day.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.day.idx < len(m.day.positions())-1 {
			m.day.idx++
		}
	case key.Matches(keyMsg, keys.add):
		category := models.CategoryBreakfast
		if pos, ok := m.day.current(); ok {
			category = pos.category
		}
		m.searchReturn = screenDay
		m.search = newSearchModel()
		m.search.target = targetDay
		m.search.date = m.day.date
		m.search.category = category
		m.currentScreen = screenSearch
	case key.Matches(keyMsg, keys.delete):
		pos, ok := m.day.current()
		if !ok || pos.index < 0 {
			return m, nil
		}
		entry := m.day.log.Entries[pos.category][pos.index]
		m.showConfirm = true
		m.pendingAction = confirmDeleteEntry
		m.confirm.message = "Удалить \"" + fitText(entry.Product.Name, 30) + "\"?"
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.picking {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.search.picking = false
			m.search.amount.Blur()
			m.search.query.Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			quantity, ok := parseAmount(strings.TrimSpace(m.search.amount.Value()))
			if !ok {
				m.showErrorf("Введите положительное число граммов")
				return m, nil
			}
			product, ok := m.search.current()
			if !ok {
				return m, nil
			}
			entry := models.FoodEntry{Product: product, Quantity: quantity, Unit: models.UnitGram}

			if m.search.target == targetMeal {
				m.mealForm.meal.Foods = append(m.mealForm.meal.Foods, entry)
				m.mealForm.totals = m.services.MealService.MealTotals(m.mealForm.meal)
				m.currentScreen = screenMealForm
				return m, nil
			}
			return m, m.cmdAddEntry(m.search.date, m.search.category, entry)
		}

		var cmd tea.Cmd
		m.search.amount, cmd = m.search.amount.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.searchReturn
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if len(m.search.results) > 0 && !m.search.query.Focused() {
			m.search.picking = true
			m.search.amount.SetValue("100")
			m.search.amount.Focus()
			return m, nil
		}
		query := strings.TrimSpace(m.search.query.Value())
		if query == "" {
			return m, nil
		}
		m.search.searching = true
		m.search.query.Blur()
		return m, tea.Batch(m.search.spinner.Tick, m.cmdSearch(query))
	case key.Matches(keyMsg, keys.up):
		if !m.search.query.Focused() && m.search.idx > 0 {
			m.search.idx--
			return m, nil
		}
	case key.Matches(keyMsg, keys.down):
		if !m.search.query.Focused() && m.search.idx < len(m.search.results)-1 {
			m.search.idx++
			return m, nil
		}
	case key.Matches(keyMsg, keys.tab):
		if m.search.query.Focused() {
			m.search.query.Blur()
		} else {
			m.search.query.Focus()
		}
		return m, nil
	case key.Matches(keyMsg, keys.favorite):
		if product, ok := m.search.current(); ok && !m.search.query.Focused() {
			return m, m.cmdToggleFavorite(product.Code)
		}
	}

	if m.search.query.Focused() {
		var cmd tea.Cmd
		m.search.query, cmd = m.search.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateMeals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.meals.idx > 0 {
			m.meals.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.meals.idx < len(m.meals.meals)-1 {
			m.meals.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		meal, ok := m.meals.current()
		if !ok {
			return m, nil
		}
		m.mealForm = newMealFormModel(meal)
		m.mealForm.totals = m.services.MealService.MealTotals(meal)
		m.currentScreen = screenMealForm
	case key.Matches(keyMsg, keys.add):
		m.mealForm = newMealFormModel(models.Meal{})
		m.currentScreen = screenMealForm
	case key.Matches(keyMsg, keys.delete):
		meal, ok := m.meals.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.pendingAction = confirmDeleteMeal
		m.confirm.message = "Удалить блюдо \"" + fitText(meal.Name, 30) + "\"?"
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateMealForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMeals
			m.meals.loading = true
			return m, m.cmdLoadMeals()
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.mealForm.inputs[m.mealForm.focus].Blur()
			m.mealForm.focus = (m.mealForm.focus + 1) % len(m.mealForm.inputs)
			m.mealForm.inputs[m.mealForm.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.add):
			m.searchReturn = screenMealForm
			m.search = newSearchModel()
			m.search.target = targetMeal
			m.currentScreen = screenSearch
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			meal := m.mealForm.meal
			meal.Name = strings.TrimSpace(m.mealForm.inputs[0].Value())
			meal.Description = strings.TrimSpace(m.mealForm.inputs[1].Value())
			if meal.Name == "" {
				m.showErrorf("Название блюда обязательно")
				return m, nil
			}
			return m, m.cmdSaveMeal(meal)
		}
	}

	var cmd tea.Cmd
	m.mealForm.inputs[m.mealForm.focus], cmd = m.mealForm.inputs[m.mealForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateWeight(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			weight, parsed := parseAmount(strings.TrimSpace(m.weight.input.Value()))
			if !parsed {
				m.showErrorf("Введите вес в килограммах")
				return m, nil
			}
			return m, m.cmdRecordWeight(time.Now().Format(dateLayout), weight)
		case key.Matches(keyMsg, keys.up):
			if m.weight.idx < len(m.weight.entries)-1 {
				m.weight.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.weight.idx > 0 {
				m.weight.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.delete):
			entry, ok := m.weight.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.pendingAction = confirmDeleteWeight
			m.confirm.message = "Удалить измерение за " + entry.Date + "?"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.weight.input, cmd = m.weight.input.Update(msg)
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile.inputs[m.profile.focus].Blur()
			m.profile.focus = (m.profile.focus + 1) % profileFieldCount
			m.profile.inputs[m.profile.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.inputs[m.profile.focus].Blur()
			m.profile.focus = (m.profile.focus + profileFieldCount - 1) % profileFieldCount
			m.profile.inputs[m.profile.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.suggest):
			suggested := m.services.ProfileService.SuggestedCalories(m.profile.collect())
			if suggested <= 0 {
				m.showErrorf("Для подбора нужны рост, вес и возраст")
				return m, nil
			}
			m.profile.inputs[profileCalories].SetValue(fmt.Sprintf("%.0f", suggested))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.profile.status = ""
			return m, m.cmdSaveProfile(m.profile.collect())
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTransfer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.transfer.typing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.transfer.typing = false
			m.transfer.path.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.transfer.path.Value())
			if path == "" {
				return m, nil
			}
			m.transfer.typing = false
			m.transfer.path.Blur()
			m.transfer.working = true
			return m, m.cmdImport(path)
		}

		var cmd tea.Cmd
		m.transfer.path, cmd = m.transfer.path.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.transfer.idx > 0 {
			m.transfer.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.transfer.idx < transferActionCount-1 {
			m.transfer.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		if m.transfer.format == transfer.FormatJSON {
			m.transfer.format = transfer.FormatCSV
		} else {
			m.transfer.format = transfer.FormatJSON
		}
	case keyMsg.String() == "o":
		m.transfer.override = !m.transfer.override
	case key.Matches(keyMsg, keys.enter):
		switch m.transfer.idx {
		case transferExportFile:
			m.transfer.working = true
			return m, m.cmdExport(false)
		case transferExportClipboard:
			m.transfer.working = true
			return m, m.cmdExport(true)
		case transferImportFile:
			m.transfer.typing = true
			m.transfer.path.Focus()
		case transferWipe:
			m.showConfirm = true
			m.pendingAction = confirmWipe
			m.confirm.message = "Стереть ВСЕ данные без возможности восстановления?"
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenDay:
		body = m.day.View()
	case screenSearch:
		body = m.search.View()
	case screenMeals:
		body = m.meals.View()
	case screenMealForm:
		body = m.mealForm.View()
	case screenWeight:
		body = m.weight.View()
	case screenProfile:
		body = m.profile.View()
	case screenTransfer:
		body = m.transfer.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}
