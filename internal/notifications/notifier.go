package notifications

import "context"

type Kind string

const (
	KindRegistered   Kind = "registration.confirmed"
	KindUnregistered Kind = "registration.cancelled"
	KindEventPurged  Kind = "event.purged"
)

// Notice describes one registration lifecycle change. Student is empty
// for KindEventPurged; Affected is only set for it.
type Notice struct {
	Kind      Kind
	Student   string
	EventName string
	At        string
	Affected  int
}

type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}
