package service

import (
	"github.com/MKhiriev/harbor-admin/internal/adapter"
	"github.com/MKhiriev/harbor-admin/internal/config"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/validators"
)

type Services struct {
	AccountService AccountService
}

func NewServices(accountsAdapter adapter.AccountsAdapter, cfg config.ClientApp, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(accountsAdapter, validators.NewAccountValidator(), cfg.StrictUsernames, logger),
	}
}
