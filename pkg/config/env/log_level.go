package env

import (
	"log/slog"
	"os"
	"strings"
)

// LogLevel maps LOG_LEVEL (debug, info, warn, error) to a slog level. Unknown or empty
// values fall back to def.
func LogLevel(def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}
