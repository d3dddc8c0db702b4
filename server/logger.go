package server

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger настраивает глобальный структурированный логгер в формате JSON
func SetupLogger(level string) {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)
}

// parseLogLevel переводит строковый уровень логирования в slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
