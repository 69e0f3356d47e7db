package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/msavelyeva/nutrikeep/internal/transfer"
)

const (
	transferExportFile = iota
	transferExportClipboard
	transferImportFile
	transferWipe
	transferActionCount
)

var transferActions = [transferActionCount]string{
	"Экспорт в файл",
	"Экспорт в буфер обмена",
	"Импорт из файла",
	"Стереть все данные",
}

type transferModel struct {
	idx      int
	format   transfer.Format
	override bool
	path     textinput.Model
	typing   bool // вводится путь к файлу импорта
	status   string
	working  bool
}

func newTransferModel() transferModel {
	path := textinput.New()
	path.Placeholder = "путь к файлу"
	return transferModel{format: transfer.FormatJSON, path: path}
}

func (m transferModel) View() string {
	out := titleStyle.Render("Экспорт / импорт") + "\n\n"

	out += fmt.Sprintf("Формат: %s    перезапись при импорте: %s\n\n",
		m.format, onOff(m.override))

	if m.typing {
		out += "Файл: " + m.path.View() + "\n"
	} else {
		for i, action := range transferActions {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + action + "\n"
		}
	}

	if m.working {
		out += "\nВыполняется...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("t формат  o перезапись  enter выполнить  esc меню")
	return out
}

func onOff(v bool) string {
	if v {
		return "вкл"
	}
	return "выкл"
}
