// Package telemetry provides the library's ambient structured logging.
// Logging is explicitly out of the core's contractual surface (§1 scopes
// "packaging, logging, installation" out as an external collaborator),
// but a library still needs a disciplined way to emit diagnostics, so
// this package follows the same *slog.Logger-wrapping, level-gated shape
// the rest of the ecosystem uses. The one hard rule: call sites may log
// share shape (group/member counts, iteration exponent, identifier) and
// never secret material (master secret, encrypted master secret,
// passphrase, share values, round-function output).
package telemetry

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Level is a three-state verbosity model: off, error-only, or debug.
type Level int

// Level constants.
const (
	LevelOff Level = iota
	LevelError
	LevelDebug
)

// ParseLevel parses a level string, defaulting to LevelError on anything
// unrecognised so a bad config value fails toward more logging, not
// silent loss.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LevelOff
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelError
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelOff, LevelError:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// Logger wraps an *slog.Logger with the level gate the rest of this
// module's ambient stack expects. The zero Logger is a valid, silent
// logger (LevelOff), so call sites can hold a Logger value without nil
// checks.
type Logger struct {
	mu      sync.Mutex
	level   Level
	slogger *slog.Logger
}

// New wraps base at the given level. A nil base disables logging
// regardless of level.
func New(level Level, base *slog.Logger) *Logger {
	return &Logger{level: level, slogger: base}
}

// Discard is a Logger that never emits anything, the default for
// callers who don't ask for diagnostics.
func Discard() *Logger {
	return &Logger{level: LevelOff}
}

// DebugAttrs logs non-secret share-shape metadata at debug level.
func (l *Logger) DebugAttrs(msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level != LevelDebug || l.slogger == nil {
		return
	}
	l.slogger.LogAttrs(context.Background(), l.level.slogLevel(), msg, attrs...)
}

// ErrorAttrs logs a failure's error kind and non-secret context.
func (l *Logger) ErrorAttrs(msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level == LevelOff || l.slogger == nil {
		return
	}
	l.slogger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// SetLevel changes the gate level.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}
