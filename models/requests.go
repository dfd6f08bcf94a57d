package models

// CreateAccountRequest is the body of PUT /users.
type CreateAccountRequest struct {
	// Username is the identifier of the account to create.
	Username string `json:"username"`

	// Password is the initial pass phrase.
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /users/{username}.
type ChangePasswordRequest struct {
	// Password is the new pass phrase.
	Password string `json:"password"`
}
