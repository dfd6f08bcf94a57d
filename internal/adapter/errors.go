package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. A [*ServerError] unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	ErrEmptyUsername   = errors.New("empty username")
	ErrDecodeResponse  = errors.New("cannot decode response")
	ErrInvalidBaseURL  = errors.New("invalid base url")
	ErrInvalidSettings = errors.New("invalid adapter settings")
)

// ServerError describes a non-2xx backend response.
type ServerError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the "message" field of a JSON error body, if any. It is
	// meant to be shown to the operator verbatim.
	Message string
	// Body is the raw, trimmed response body.
	Body string

	kind error
}

// Error implements error.
func (e *ServerError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, detail)
}

// Unwrap returns the status sentinel.
func (e *ServerError) Unwrap() error {
	return e.kind
}

// HasMessage reports whether the backend supplied a displayable message.
func (e *ServerError) HasMessage() bool {
	return e.Message != ""
}
