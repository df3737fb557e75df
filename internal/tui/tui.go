// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client screen in the terminal with Bubble Tea.
//
// The model keeps no state of its own beyond widgets: every intent is
// applied to a [screen.Machine], and the requests it returns are executed
// against the session service as [tea.Cmd] values whose results are fed
// back through the machine's ...Done transitions.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("tui: session service is required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run starts the program and blocks until the user quits or ctx is done.
// The startup session restore is the program's first command. A quit by the
// user is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newModel(ctx, t.services.SessionService, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*rootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
