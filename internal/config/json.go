package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	Adapter struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthToken      string   `json:"auth_token"`
	} `json:"adapter,omitempty"`

	App struct {
		Locale string `json:"locale"`
	} `json:"app,omitempty"`

	Accounts struct {
		StrictUsernames *bool `json:"strict_usernames"`
	} `json:"accounts,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			AuthToken:      jsonCfg.Adapter.AuthToken,
		},
		App: App{
			Locale: jsonCfg.App.Locale,
		},
		Accounts: Accounts{
			StrictUsernames: jsonCfg.Accounts.StrictUsernames,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
