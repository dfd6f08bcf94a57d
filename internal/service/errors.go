package service

import "errors"

var (
	ErrPassphraseMismatch      = errors.New("pass phrases don't match")
	ErrPassphraseChangeAborted = errors.New("pass phrase change aborted")
	ErrDeleteNotConfirmed      = errors.New("account removal not confirmed")
	ErrInvalidUsername         = errors.New("invalid username")
)

// IsAborted reports whether err means the operator backed out of an
// operation. Such errors are neither shown nor logged.
func IsAborted(err error) bool {
	return errors.Is(err, ErrPassphraseChangeAborted) || errors.Is(err, ErrDeleteNotConfirmed)
}
