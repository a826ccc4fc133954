package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON logger at info level for prod and a text logger at debug
// level for everything else.
func New(w io.Writer, env string) *slog.Logger {
	var h slog.Handler
	if env == "prod" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(h).With("service", "exercise-tracker")
}
