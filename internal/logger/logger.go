// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// jellyfin-discover daemon.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Trace, Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain per-datagram
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"github.com/rs/zerolog/log"
)

// journalEnabled reports whether the systemd journal socket is reachable.
// Replaced in tests.
var journalEnabled = journal.Enabled

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON lines to os.Stderr for the
// given role label (e.g. "jellyfin-discover").
//
// The logger is configured with:
//   - global log level set to level;
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLogger(role string, level zerolog.Level) *Logger {
	return newLogger(os.Stderr, role, level)
}

// NewJournalLogger constructs a *Logger that writes straight to the systemd
// journal. Every entry carries a VERSION field set to version.
func NewJournalLogger(role string, level zerolog.Level, version string) *Logger {
	l := newLogger(journald.NewJournalDWriter(), role, level)
	l.Logger = l.With().Str("VERSION", version).Logger()
	return l
}

// NewSystemLogger picks the log sink once at startup: the systemd journal
// when the process runs under it, plain JSON on stderr otherwise.
func NewSystemLogger(role string, level zerolog.Level, version string) *Logger {
	if ConnectedToJournal() {
		return NewJournalLogger(role, level, version)
	}

	return NewLogger(role, level)
}

// ConnectedToJournal reports whether stderr was handed to us by systemd
// (JOURNAL_STREAM is set) and the journal socket is reachable.
func ConnectedToJournal() bool {
	return os.Getenv("JOURNAL_STREAM") != "" && journalEnabled()
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// (disabled) logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
