package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the bootstrap JSON logger. The database-backed handler joins
// later through a MultiHandler, once a connection exists.
func Setup() {
	slog.SetDefault(slog.New(NewStdoutHandler()))
}

// NewStdoutHandler builds the JSON stdout handler at the level named by
// LOG_LEVEL (default INFO).
func NewStdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
