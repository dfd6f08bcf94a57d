package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/harbor-admin/internal/adapter"
	"github.com/MKhiriev/harbor-admin/models"
)

// Operator-facing texts.
const (
	TextPassphrasesMismatch = "Pass phrases don't match!"
	TextPassphraseUpdated   = "Pass phrase updated"
)

// Feedback maps the error of an account operation to the notice an operator
// should see. The second result is false when err carries nothing worth
// showing; callers log such errors instead.
func Feedback(err error) (models.Notice, bool) {
	if err == nil || IsAborted(err) {
		return models.Notice{}, false
	}

	if errors.Is(err, ErrPassphraseMismatch) {
		return models.ErrorNotice(TextPassphrasesMismatch), true
	}

	if errors.Is(err, ErrInvalidUsername) {
		return models.ErrorNotice(invalidUsernameText(err)), true
	}

	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) && serverErr.HasMessage() {
		return models.ErrorNotice(serverErr.Message), true
	}

	return models.Notice{}, false
}

// invalidUsernameText strips the wrapping prefixes and keeps the validator's
// explanation.
func invalidUsernameText(err error) string {
	text := err.Error()
	if i := strings.LastIndex(text, ": "); i >= 0 {
		text = text[i+2:]
	}
	if text == "" {
		return ErrInvalidUsername.Error()
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
