// Package notifier delivers best-effort change notifications to collaborators.
package notifier

import "context"

// Notifier pushes team-change events to interested collaborators. Delivery is
// fire-and-forget: the triggering operation has already committed, so a
// failure here must never surface to the caller.
type Notifier interface {
	NotifyMembershipChanged(ctx context.Context, teamID int64) error
	NotifySessionChanged(ctx context.Context, teamID int64) error
}
