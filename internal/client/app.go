package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/harbor-admin/internal/adapter"
	"github.com/MKhiriev/harbor-admin/internal/config"
	"github.com/MKhiriev/harbor-admin/internal/locale"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/service"
	"github.com/MKhiriev/harbor-admin/internal/tui"
	"github.com/MKhiriev/harbor-admin/models"
)

type App struct {
	services  *service.Services
	formatter *locale.Formatter
	tui       *tui.TUI
	logger    *logger.Logger
}

// NewApp wires the HTTP adapter, the account service and the terminal UI
// from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	accountsAdapter, err := adapter.NewHTTPAccountsAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create accounts adapter: %w", err)
	}

	return newApp(accountsAdapter, cfg, buildInfo, logger)
}

func newApp(accountsAdapter adapter.AccountsAdapter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	svcs := service.NewServices(accountsAdapter, cfg.App, logger)
	formatter := locale.NewFormatter(cfg.App.Locale)

	ui, err := tui.New(svcs, formatter, buildInfo, cfg.Adapter.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	logger.Debug().
		Str("backend", cfg.Adapter.BaseURL).
		Str("locale", formatter.Tag().String()).
		Bool("strict_usernames", cfg.App.StrictUsernames).
		Msg("application configured")

	return &App{services: svcs, formatter: formatter, tui: ui, logger: logger}, nil
}

// Run shows the interactive panel and blocks until the operator quits.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("panel started")
	defer a.logger.Info().Msg("panel stopped")

	return a.tui.Run(ctx)
}

// Accounts returns the account service for non-interactive front ends.
func (a *App) Accounts() service.AccountService {
	return a.services.AccountService
}

// Close releases the log file of the logger the App was built with.
func (a *App) Close() error {
	return a.logger.Close()
}

// Formatter returns the timestamp formatter for the configured locale.
func (a *App) Formatter() *locale.Formatter {
	return a.formatter
}
