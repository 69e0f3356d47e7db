package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msavelyeva/nutrikeep/models"
)

const (
	profileHeight = iota
	profileWeight
	profileGender
	profileAge
	profileCalories
	profileProtein
	profileCarbs
	profileFat
	profileFieldCount
)

var profileLabels = [profileFieldCount]string{
	"Рост, см",
	"Вес, кг",
	"Пол (male/female)",
	"Возраст",
	"Цель, ккал/день",
	"Доля белков",
	"Доля углеводов",
	"Доля жиров",
}

type profileModel struct {
	inputs  [profileFieldCount]textinput.Model
	focus   int
	status  string
	loading bool
}

func newProfileModel() profileModel {
	var m profileModel
	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 12
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	m.loading = true
	return m
}

func (m *profileModel) fill(profile models.UserProfile) {
	set := func(i int, v float64) {
		if v != 0 {
			m.inputs[i].SetValue(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	set(profileHeight, profile.Height)
	set(profileWeight, profile.Weight)
	m.inputs[profileGender].SetValue(profile.Gender)
	if profile.Age != 0 {
		m.inputs[profileAge].SetValue(strconv.Itoa(profile.Age))
	}
	set(profileCalories, profile.DailyCalories)
	set(profileProtein, profile.ProteinRatio)
	set(profileCarbs, profile.CarbsRatio)
	set(profileFat, profile.FatRatio)
}

// collect собирает профиль из полей формы. Нечисловые значения числовых
// полей читаются как ноль.
func (m profileModel) collect() models.UserProfile {
	num := func(i int) float64 {
		v, _ := strconv.ParseFloat(m.inputs[i].Value(), 64)
		return v
	}
	age, _ := strconv.Atoi(m.inputs[profileAge].Value())

	return models.UserProfile{
		Height:        num(profileHeight),
		Weight:        num(profileWeight),
		Gender:        m.inputs[profileGender].Value(),
		Age:           age,
		DailyCalories: num(profileCalories),
		ProteinRatio:  num(profileProtein),
		CarbsRatio:    num(profileCarbs),
		FatRatio:      num(profileFat),
	}
}

func (m profileModel) View() string {
	out := titleStyle.Render("Профиль") + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
		return out
	}

	for i, label := range profileLabels {
		out += label + ": " + m.inputs[i].View() + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	out += "\n" + helpStyle.Render("tab поля  g подобрать ккал  enter сохранить  esc меню")
	return out
}
