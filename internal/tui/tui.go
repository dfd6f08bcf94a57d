// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive user administration panel on top of
// bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/harbor-admin/internal/locale"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/service"
	"github.com/MKhiriev/harbor-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoAccountService = errors.New("account service is not configured")

type TUI struct {
	services  *service.Services
	formatter *locale.Formatter
	buildInfo models.AppBuildInfo
	backend   string
	logger    *logger.Logger
}

// New returns a TUI rendering timestamps with formatter. backend is the
// address shown in the about window.
func New(services *service.Services, formatter *locale.Formatter, buildInfo models.AppBuildInfo, backend string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AccountService == nil {
		return nil, ErrNoAccountService
	}

	return &TUI{
		services:  services,
		formatter: formatter,
		buildInfo: buildInfo,
		backend:   backend,
		logger:    logger,
	}, nil
}

// Run shows the panel until the operator quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newPanelModel(ctx, t.services.AccountService, t.formatter, t.buildInfo, t.backend, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(panelModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
