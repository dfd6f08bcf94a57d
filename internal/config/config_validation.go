// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] for values that can never be
// made usable, independent of the client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.Locale) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
