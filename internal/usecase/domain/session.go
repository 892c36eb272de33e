// Package domain contains application usecases orchestrating the core rules by session.
package domain

import (
	"context"
	"fmt"

	"team-focus-service/internal/entities"
)

// StartSession opens a focus session for the caller's team. At most one open
// session per team exists at any time; a concurrent second start receives
// ErrSessionActive from the repository.
func (u *Usecase) StartSession(ctx context.Context, token string, teamID int64, goalMinutes int) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	if goalMinutes <= 0 {
		u.log.Errorw("failed to start session: non-positive goal", "team_id", teamID, "goal_minutes", goalMinutes)
		return nil, fmt.Errorf("%w: goal_minutes must be positive", entities.ErrInvalidArgument)
	}

	s, err := u.repo.StartSession(ctx, teamID, goalMinutes)
	if err != nil {
		return nil, err
	}

	u.notifySessionChanged(teamID)
	return s, nil
}

// EndSession closes the open session of the caller's team.
func (u *Usecase) EndSession(ctx context.Context, token string, teamID int64) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	s, err := u.repo.EndSession(ctx, teamID)
	if err != nil {
		return nil, err
	}

	u.notifySessionChanged(teamID)
	return s, nil
}

// Sessions lists the team's sessions ordered by start time. An unknown order
// value falls back to ascending.
func (u *Usecase) Sessions(ctx context.Context, token string, teamID int64, order entities.SortOrder) ([]entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	if order != entities.OrderDesc {
		order = entities.OrderAsc
	}
	return u.repo.ListSessions(ctx, teamID, order)
}
