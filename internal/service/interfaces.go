// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/harbor-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_service_mock.go -package=mock

// AccountService defines the account administration rules shared by every
// front end. Implementations validate input locally and delegate to the
// backend adapter; they hold no account state of their own.
type AccountService interface {
	// List returns every account known to the backend, in backend order.
	List(ctx context.Context) ([]models.Account, error)

	// Create creates the account described by form.
	// Returns ErrPassphraseMismatch without contacting the backend when the
	// pass phrase and its confirmation differ.
	Create(ctx context.Context, form models.AccountForm) error

	// ChangePassphrase replaces the pass phrase of change.Username.
	// Returns ErrPassphraseChangeAborted when either answer is empty and
	// ErrPassphraseMismatch when they differ; no request is sent in both
	// cases.
	ChangePassphrase(ctx context.Context, change models.PassphraseChange) error

	// Delete removes username and all related data. Nothing is sent unless
	// confirmed is true.
	Delete(ctx context.Context, username string, confirmed bool) error
}
