package models

import "errors"

// ErrInvalidTimestamp is returned when a backend timestamp matches none of
// the accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")
