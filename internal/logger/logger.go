// Package logger wraps log/slog with the small surface the service
// needs: a JSON handler writing to stdout with a configurable level and
// a service attribute stamped on every record.
package logger

import (
	"log/slog"
	"os"
)

// Logger embeds *slog.Logger so call sites use the slog API directly.
type Logger struct {
	*slog.Logger
}

// New builds a JSON logger for the named service.  Unknown level
// strings fall back to info.
func New(service, level string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(h).With("service", service)}
}
