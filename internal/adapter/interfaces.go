// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between harbor-admin and the
// backend's account API.
//
// The primary abstraction is [AccountsAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAccountsAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ServerError] that
// carries the backend's optional message and unwraps to a status sentinel
// defined in errors.go, so callers can use [errors.Is] for status checks and
// [errors.As] to reach the message.
package adapter

import (
	"context"

	"github.com/MKhiriev/harbor-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_adapter_mock.go -package=mock

// AccountsAdapter defines transport-agnostic access to the backend's account
// collection. Every method issues exactly one request; there are no retries.
type AccountsAdapter interface {
	// ListAccounts fetches the complete account list (GET /users).
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// CreateAccount creates an account (PUT /users).
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) error

	// ChangePassword replaces the pass phrase of username
	// (POST /users/{username}).
	ChangePassword(ctx context.Context, username string, req models.ChangePasswordRequest) error

	// DeleteAccount removes username and everything attached to it
	// (DELETE /users/{username}).
	DeleteAccount(ctx context.Context, username string) error
}
