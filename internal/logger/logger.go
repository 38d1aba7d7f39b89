package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger shared by the API server components. Info and
// above; debug lines from the notifier stay off in normal operation.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
