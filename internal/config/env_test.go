// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "http://localhost:2345",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_AUTH_TOKEN":      "token",

		"APP_LOCALE": "fr-FR",

		"ACCOUNTS_STRICT_USERNAMES": "true",

		"LOG_FILE":  "/var/log/harbor-admin.log",
		"LOG_LEVEL": "info",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://localhost:2345", cfg.Adapter.Address)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "token", cfg.Adapter.AuthToken)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
	require.NotNil(t, cfg.Accounts.StrictUsernames)
	assert.True(t, *cfg.Accounts.StrictUsernames)
	assert.Equal(t, "/var/log/harbor-admin.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "radio:2345",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "radio:2345", cfg.Adapter.Address)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.AuthToken)
	assert.Nil(t, cfg.Accounts.StrictUsernames)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ACCOUNTS_STRICT_USERNAMES": "perhaps",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
