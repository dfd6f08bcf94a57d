package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/harbor-admin/internal/config"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/utils"
	"github.com/MKhiriev/harbor-admin/models"
)

const (
	accountsPath = "/users"
	accountPath  = "/users/{username}"
)

type httpAccountsAdapter struct {
	client *utils.HTTPClient
	traces *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAccountsAdapter constructs an HTTP/REST implementation of
// [AccountsAdapter]. It normalises the base URL from adapterCfg.BaseURL,
// applies the request timeout and the optional bearer token, and installs
// the tracing and logging hooks.
//
// Returns an error if the base URL cannot be normalised or the timeout is
// not positive.
func NewHTTPAccountsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if adapterCfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", ErrInvalidSettings)
	}

	h := &httpAccountsAdapter{
		client: utils.NewHTTPClient(),
		traces: utils.NewUUIDGenerator(),
		logger: logger,
	}

	h.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.withTraceID).
		OnAfterResponse(h.withLogging).
		OnError(h.logTransportError)

	if token := strings.TrimSpace(adapterCfg.AuthToken); token != "" {
		h.client.SetAuthToken(token)
	}

	return h, nil
}

// ListAccounts implements [AccountsAdapter]. It GETs /users and decodes the
// "users" array. A body without the array yields an empty list.
func (h *httpAccountsAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.AccountsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	if body.Users == nil {
		body.Users = []models.Account{}
	}

	return body.Users, nil
}

// CreateAccount implements [AccountsAdapter]. It PUTs {username, password}
// to /users.
func (h *httpAccountsAdapter) CreateAccount(ctx context.Context, req models.CreateAccountRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(accountsPath)
	if err != nil {
		return fmt.Errorf("create account request: %w", err)
	}

	return mapHTTPError(resp)
}

// ChangePassword implements [AccountsAdapter]. It POSTs {password} to
// /users/{username}; the username is path-escaped.
func (h *httpAccountsAdapter) ChangePassword(ctx context.Context, username string, req models.ChangePasswordRequest) error {
	if username == "" {
		return ErrEmptyUsername
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("username", username).
		SetBody(req).
		Post(accountPath)
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAccount implements [AccountsAdapter]. It sends DELETE
// /users/{username}; the username is path-escaped.
func (h *httpAccountsAdapter) DeleteAccount(ctx context.Context, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		Delete(accountPath)
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}
