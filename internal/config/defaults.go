package config

import (
	"os"
	"time"
)

const (
	// DefaultAddress is where a locally running backend listens by default.
	DefaultAddress = "http://localhost:2345"
	// DefaultRequestTimeout bounds outbound requests when nothing else is set.
	DefaultRequestTimeout = 10 * time.Second
	// DefaultLocale is used when neither APP_LOCALE nor LANG is set.
	DefaultLocale = "en-US"
	// DefaultLogLevel is the level of the client log.
	DefaultLogLevel = "debug"
)

func defaultConfig() *StructuredConfig {
	locale := os.Getenv("LANG")
	if locale == "" || locale == "C" || locale == "POSIX" {
		locale = DefaultLocale
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Address:        DefaultAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		App: App{Locale: locale},
		Log: Log{Level: DefaultLogLevel},
	}
}
