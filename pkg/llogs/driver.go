package llogs

import (
	"log/slog"
	"strings"
)

type Driver interface {
	Logger() *slog.Logger
	Close() bool
}

// ParseLevel maps ENV_APP_LOG_LEVEL onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
