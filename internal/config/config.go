// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging built-in defaults, environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the REST transport to the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// App holds presentation settings.
	App App `envPrefix:"APP_"`

	// Accounts holds account policy settings.
	Accounts Accounts `envPrefix:"ACCOUNTS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the backend transport.
type Adapter struct {
	// Address is the base URL of the backend REST API
	// (e.g. "http://localhost:2345" or "radio.example.org/api").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthToken is an optional bearer token for deployments that put the
	// backend behind an authenticating proxy.
	// Env: ADAPTER_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// App holds presentation settings.
type App struct {
	// Locale is a BCP 47 tag or POSIX locale name used to format timestamps
	// (e.g. "en-US", "fr_FR.UTF-8").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`
}

// Accounts holds account policy settings.
type Accounts struct {
	// StrictUsernames rejects usernames with special characters or spaces
	// before any request is sent. When false the policy is only advisory.
	// Nil means the source left it unset, so an explicit false from a later
	// source still overrides an earlier true.
	// Env: ACCOUNTS_STRICT_USERNAMES
	StrictUsernames *bool `env:"STRICT_USERNAMES"`
}

// Strict reports whether the blocking username policy is on.
func (a Accounts) Strict() bool {
	return a.StrictUsernames != nil && *a.StrictUsernames
}

// Log holds logging settings.
type Log struct {
	// File is the log file of the interactive client. Empty means
	// harbor-admin.log next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is the minimal zerolog level ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. fs must be a flag set previously passed to [RegisterFlags] and
// already parsed; a nil fs skips the flag source.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
