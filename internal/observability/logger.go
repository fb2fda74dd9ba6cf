package observability

import (
	"io"
	"log/slog"
)

// NewLogger writes JSON records to w, which is stderr in the binaries so
// log lines never interleave with menu output on stdout.
func NewLogger(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler))
}
