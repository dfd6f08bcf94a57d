package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagAddress         = "address"
	FlagRequestTimeout  = "request-timeout"
	FlagAuthToken       = "auth-token"
	FlagLocale          = "locale"
	FlagStrictUsernames = "strict-usernames"
	FlagLogFile         = "log-file"
	FlagLogLevel        = "log-level"
	FlagConfig          = "config"
)

// BackendAddress is a flag value holding the backend base URL. It implements
// pflag.Value and rejects addresses that cannot be normalized.
type BackendAddress struct {
	URL string
}

// RegisterFlags defines all configuration flags on fs. Defaults are left
// empty so that only explicitly set flags take part in the merge.
//
// Flags:
//
//	-a, --address          backend base URL, e.g. http://localhost:2345
//	    --request-timeout  request timeout (e.g., "10s", "1m")
//	    --auth-token       bearer token sent with every request
//	    --locale           locale used to format timestamps
//	    --strict-usernames reject usernames with special characters
//	    --log-file         client log file
//	    --log-level        log level
//	-c, --config           json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(&BackendAddress{}, FlagAddress, "a", "Backend base URL, e.g. http://localhost:2345")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 10s, 1m)")
	fs.String(FlagAuthToken, "", "Bearer token sent with every request")
	fs.String(FlagLocale, "", "Locale used to format timestamps (e.g., en-US, fr_FR.UTF-8)")
	fs.Bool(FlagStrictUsernames, false, "Reject usernames with special characters or spaces")
	fs.String(FlagLogFile, "", "Client log file")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var (
		cfg StructuredConfig
		err error
	)

	if f := fs.Lookup(FlagAddress); f != nil {
		cfg.Adapter.Address = f.Value.String()
	}
	if cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Adapter.AuthToken, err = fs.GetString(FlagAuthToken); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.App.Locale, err = fs.GetString(FlagLocale); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if f := fs.Lookup(FlagStrictUsernames); f != nil && f.Changed {
		strict, err := fs.GetBool(FlagStrictUsernames)
		if err != nil {
			return nil, fmt.Errorf("error reading flags: %w", err)
		}
		cfg.Accounts.StrictUsernames = &strict
	}
	if cfg.Log.File, err = fs.GetString(FlagLogFile); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.JSONFilePath, err = fs.GetString(FlagConfig); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return &cfg, nil
}

// String returns the normalized URL, or an empty string when unset.
func (a *BackendAddress) String() string {
	return a.URL
}

// Set normalizes s and stores it.
func (a *BackendAddress) Set(s string) error {
	u, err := NormalizeBaseURL(s)
	if err != nil {
		return err
	}
	a.URL = u
	return nil
}

// Type implements pflag.Value.
func (a *BackendAddress) Type() string {
	return "url"
}

// IsSet reports whether an address has been provided.
func (a *BackendAddress) IsSet() bool {
	return strings.TrimSpace(a.URL) != ""
}
