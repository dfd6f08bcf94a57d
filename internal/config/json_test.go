package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	content := `{
		"adapter": {"address": "http://json:2345", "request_timeout": "15s", "auth_token": "jt"},
		"app": {"locale": "fr-FR"},
		"accounts": {"strict_usernames": true},
		"log": {"file": "/tmp/h.log", "level": "info"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://json:2345", cfg.Adapter.Address)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "jt", cfg.Adapter.AuthToken)
	assert.Equal(t, "fr-FR", cfg.App.Locale)
	require.NotNil(t, cfg.Accounts.StrictUsernames)
	assert.True(t, *cfg.Accounts.StrictUsernames)
	assert.Equal(t, "/tmp/h.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}
