package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier delivers notices as structured log lines.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, in Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attrs := []any{"kind", in.Kind, "event", in.EventName}
	if in.Student != "" {
		attrs = append(attrs, "student", in.Student)
	}
	if in.At != "" {
		attrs = append(attrs, "at", in.At)
	}
	if in.Kind == KindEventPurged {
		attrs = append(attrs, "registrations_removed", in.Affected)
	}

	n.log.InfoContext(ctx, "notification", attrs...)
	return nil
}

// Nop drops every notice.
type Nop struct{}

func (Nop) Notify(context.Context, Notice) error { return nil }
