package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// BaseURL is the normalized backend base URL.
	BaseURL string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
	// AuthToken is an optional bearer token.
	AuthToken string
}

// ClientApp contains presentation and policy settings.
type ClientApp struct {
	// Locale is the raw locale name used to format timestamps.
	Locale string
	// StrictUsernames enables the blocking username policy.
	StrictUsernames bool
}

// ClientLog contains logging settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the validated configuration consumed by the application,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	App     ClientApp
	Log     ClientLog
}

// GetClientConfig builds and validates the application config view from the
// merged structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AuthToken:      cfg.Adapter.AuthToken,
		},
		App: ClientApp{
			Locale:          cfg.App.Locale,
			StrictUsernames: cfg.Accounts.Strict(),
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	baseURL, err := NormalizeBaseURL(cfg.Adapter.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	clientCfg.Adapter.BaseURL = baseURL

	return clientCfg, clientCfg.validate()
}
