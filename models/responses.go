package models

// AccountsResponse is the body returned by GET /users.
type AccountsResponse struct {
	// Users is the complete account list. It replaces whatever the client
	// displayed before.
	Users []Account `json:"users"`
}

// ErrorResponse is the optional body of a failed backend call. When Message
// is set it is meant to be shown to the operator verbatim.
type ErrorResponse struct {
	Message string `json:"message"`
}
