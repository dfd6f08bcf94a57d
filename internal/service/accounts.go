// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/harbor-admin/internal/adapter"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/validators"
	"github.com/MKhiriev/harbor-admin/models"
)

type accountService struct {
	adapter   adapter.AccountsAdapter
	validator validators.Validator

	strictUsernames bool

	logger *logger.Logger
}

// NewAccountService returns an [AccountService] backed by accountsAdapter.
// With strictUsernames set, Create rejects usernames outside the plain
// character set instead of only advising against them.
func NewAccountService(accountsAdapter adapter.AccountsAdapter, validator validators.Validator, strictUsernames bool, logger *logger.Logger) AccountService {
	return &accountService{
		adapter:         accountsAdapter,
		validator:       validator,
		strictUsernames: strictUsernames,
		logger:          logger,
	}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.adapter.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	s.logger.Debug().Int("count", len(accounts)).Msg("accounts listed")
	return accounts, nil
}

func (s *accountService) Create(ctx context.Context, form models.AccountForm) error {
	if form.PassphrasesMismatch() {
		return ErrPassphraseMismatch
	}

	if s.strictUsernames {
		if err := s.validator.Validate(ctx, form, validators.FieldUsername); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidUsername, err)
		}
	}

	if err := s.adapter.CreateAccount(ctx, form.Request()); err != nil {
		return fmt.Errorf("create account %q: %w", form.Username, err)
	}

	s.logger.Info().Str("username", form.Username).Msg("account created")
	return nil
}

func (s *accountService) ChangePassphrase(ctx context.Context, change models.PassphraseChange) error {
	if err := s.validator.Validate(ctx, change, validators.FieldPassphrase); err != nil || change.Confirmation == "" {
		return ErrPassphraseChangeAborted
	}
	if change.Passphrase != change.Confirmation {
		return ErrPassphraseMismatch
	}

	req := models.ChangePasswordRequest{Password: change.Passphrase}
	if err := s.adapter.ChangePassword(ctx, change.Username, req); err != nil {
		return fmt.Errorf("change pass phrase of %q: %w", change.Username, err)
	}

	s.logger.Info().Str("username", change.Username).Msg("pass phrase updated")
	return nil
}

func (s *accountService) Delete(ctx context.Context, username string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	if err := s.adapter.DeleteAccount(ctx, username); err != nil {
		return fmt.Errorf("delete account %q: %w", username, err)
	}

	s.logger.Info().Str("username", username).Msg("account removed")
	return nil
}
