// Package domain contains application usecases orchestrating the core rules.
package domain

import (
	"context"
	"time"

	"team-focus-service/internal/notifier"
	"team-focus-service/internal/repository"

	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	repo          repository.Repository
	notif         notifier.Notifier
	inviteBaseURL string
	timeout       time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notif notifier.Notifier,
	inviteBaseURL string,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:           ctx,
		log:           log,
		repo:          repo,
		notif:         notif,
		inviteBaseURL: inviteBaseURL,
		timeout:       timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// notifyMembershipChanged dispatches the event detached from the request
// context: the write has already succeeded and must not be affected.
func (u *Usecase) notifyMembershipChanged(teamID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notif.NotifyMembershipChanged(ctx, teamID); err != nil {
			u.log.Warnw("membership notification failed", "error", err, "team_id", teamID)
		}
	}()
}

func (u *Usecase) notifySessionChanged(teamID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notif.NotifySessionChanged(ctx, teamID); err != nil {
			u.log.Warnw("session notification failed", "error", err, "team_id", teamID)
		}
	}()
}
