// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

// Package tui реализует терминальный интерфейс приложения на bubbletea.
// Все данные проходят через сервисный слой, напрямую к хранилищу пакет не
// обращается.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/service"
)

var ErrUserQuit = errors.New("пользователь вышел из программы")

type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run запускает главный цикл интерфейса и блокируется до выхода
// пользователя.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
