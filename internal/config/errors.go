package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAppConfigs indicates invalid presentation settings
	// (for example, an empty locale).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
