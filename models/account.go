// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account represents a streaming account known to the backend.
// Username is the immutable identifier; ModifiedAt moves forward every time
// the pass phrase is changed.
type Account struct {
	// Username is the unique account identifier. The backend expects it to
	// contain no special characters and no spaces.
	Username string `json:"username"`

	// CreatedAt is the moment the account was created on the backend.
	CreatedAt Timestamp `json:"created_at"`

	// ModifiedAt is the moment of the last pass phrase change.
	ModifiedAt Timestamp `json:"modified_at"`
}
