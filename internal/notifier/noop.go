package notifier

import "context"

// Noop discards events when no webhook URL is configured.
type Noop struct{}

// NewNoop returns a Notifier that discards all events.
func NewNoop() *Noop {
	return &Noop{}
}

// NotifyMembershipChanged implements Notifier.
func (n *Noop) NotifyMembershipChanged(_ context.Context, _ int64) error { return nil }

// NotifySessionChanged implements Notifier.
func (n *Noop) NotifySessionChanged(_ context.Context, _ int64) error { return nil }

var _ Notifier = (*Noop)(nil)
