package shared

import "context"

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Notifier hands a message off for delivery. Implementations must not block on
// delivery and callers treat a returned error as log-only.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Message) error { return nil }
