// Package log provides categorized structured logging. Logging is disabled
// until Init is called, so library consumers pay nothing unless they opt in.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Category tags a log line with the subsystem it came from.
type Category string

const (
	CatStore Category = "store"
	CatFS    Category = "fs"
	CatWatch Category = "watch"
	CatCLI   Category = "cli"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init routes log output to w at the given level.
func Init(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message with key-value pairs.
func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, withCategory(cat, args)...)
}

// Info logs an informational message with key-value pairs.
func Info(cat Category, msg string, args ...any) {
	current().Info(msg, withCategory(cat, args)...)
}

// Warn logs a warning with key-value pairs.
func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, withCategory(cat, args)...)
}

// Error logs an error-level message with key-value pairs.
func Error(cat Category, msg string, args ...any) {
	current().Error(msg, withCategory(cat, args)...)
}

// ErrorErr logs an error-level message carrying an error value.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	current().Error(msg, withCategory(cat, append([]any{"error", err}, args...))...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCategory(cat Category, args []any) []any {
	return append([]any{"category", string(cat)}, args...)
}
