// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel is the environment variable that selects the log level.
const EnvVarLogLevel = "LOG_LEVEL"

// New returns a JSON logger tagged with the module name and version.
// Source locations are only attached at debug level.
func New(w io.Writer, module, version, level string) *slog.Logger {
	lev := ParseLevel(level)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// SetDefault installs a stderr logger using LOG_LEVEL.
func SetDefault(module, version string) {
	slog.SetDefault(New(os.Stderr, module, version, os.Getenv(EnvVarLogLevel)))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
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
