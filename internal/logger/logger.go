// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// harbor-admin.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer; per-request child loggers
// come from WithTraceID.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLogFileName is used when no log file is configured. The file is
// created next to the executable.
const DefaultLogFileName = "harbor-admin.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stderr.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a timestamp;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(role string, level zerolog.Level) *Logger {
	return newLogger(os.Stderr, role, level)
}

// NewClientLogger constructs a *Logger for the interactive client. The
// terminal is owned by the UI, so entries are appended to path instead; an
// empty path resolves to [DefaultLogFileName] next to the executable and "-"
// selects os.Stderr, for scripted use of the non-interactive commands. When the
// file cannot be opened a single warning goes to os.Stderr and the logger falls
// back to io.Discard rather than corrupting the screen.
//
// The caller owns the file and releases it with [Logger.Close].
func NewClientLogger(role, path string, level zerolog.Level) *Logger {
	if strings.TrimSpace(path) == "-" {
		return NewLogger(role, level)
	}
	return newClientLogger(os.Stderr, role, path, level)
}

func newClientLogger(stderr io.Writer, role, path string, level zerolog.Level) *Logger {
	switch strings.TrimSpace(path) {
	case "-":
		return newLogger(stderr, role, level)
	case "":
		path = defaultLogPath()
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		newLogger(stderr, role, level).Warn().Err(err).Str("path", path).Msg("log file unavailable, logging disabled")
		return newLogger(io.Discard, role, level)
	}

	l := newLogger(logFile, role, level)
	l.closer = logFile
	return l
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
}

// ParseLevel converts a textual level ("debug", "info", ...) into a zerolog
// level. An empty string yields zerolog.DebugLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.DebugLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close releases the log file opened by [NewClientLogger]. It is a no-op for
// loggers writing to a stream.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	closer := l.closer
	l.closer = nil
	return closer.Close()
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// WithTraceID returns a child logger tagged with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	return child
}
