// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountForm is the transient state of the create-account form.
// It is never persisted and is reset after a successful submission or a
// cancellation.
type AccountForm struct {
	Username               string
	Passphrase             string
	PassphraseConfirmation string
}

// PassphrasesMismatch reports whether the pass phrase and its confirmation
// differ. A form in this state must not be submitted.
func (f AccountForm) PassphrasesMismatch() bool {
	return f.Passphrase != f.PassphraseConfirmation
}

// Request converts the form into the create-account request body.
func (f AccountForm) Request() CreateAccountRequest {
	return CreateAccountRequest{Username: f.Username, Password: f.Passphrase}
}

// IsZero reports whether every field of the form is empty.
func (f AccountForm) IsZero() bool {
	return f == AccountForm{}
}

// PassphraseChange carries the answers of the change-pass-phrase dialog for
// a single account.
type PassphraseChange struct {
	Username     string
	Passphrase   string
	Confirmation string
}
