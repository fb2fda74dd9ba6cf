package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// SpanHandler stamps trace_id and span_id on records logged inside a span,
// so a log line can be matched to the operation span that produced it.
type SpanHandler struct {
	inner slog.Handler
}

func NewTraceHandler(inner slog.Handler) *SpanHandler {
	return &SpanHandler{inner: inner}
}

func (h *SpanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *SpanHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r = r.Clone()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.inner.Handle(ctx, r)
}

func (h *SpanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewTraceHandler(h.inner.WithAttrs(attrs))
}

func (h *SpanHandler) WithGroup(name string) slog.Handler {
	return NewTraceHandler(h.inner.WithGroup(name))
}
