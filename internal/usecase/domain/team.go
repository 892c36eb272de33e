// Package domain contains application usecases orchestrating the core rules by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"team-focus-service/internal/entities"

	"github.com/google/uuid"
)

// CreateTeam creates a team with a fresh invitation uuid and links the
// creator as its first member.
func (u *Usecase) CreateTeam(ctx context.Context, token, name, description string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.CreateTeam(ctx, entities.Team{
		Name:        name,
		Description: description,
		InviteUUID:  uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.repo.AddMember(ctx, team.ID, usr.ID); err != nil {
		return nil, fmt.Errorf("link creator: %w", err)
	}

	u.notifyMembershipChanged(team.ID)
	return team, nil
}

// Team returns a team, visible to members only.
func (u *Usecase) Team(ctx context.Context, token string, teamID int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}
	return u.repo.GetTeam(ctx, teamID)
}

// MyTeams returns the teams of the token's owner.
func (u *Usecase) MyTeams(ctx context.Context, token string) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.repo.TeamsOf(ctx, usr.ID)
}

// InvitationLink renders the shareable join link for a team. Sending the
// invitation (mail, chat) happens outside this service.
func (u *Usecase) InvitationLink(ctx context.Context, token string, teamID int64) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return "", err
	}

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(u.inviteBaseURL, "/"), team.InviteUUID), nil
}

// TeamStats returns the team's aggregated focus history, members only.
func (u *Usecase) TeamStats(ctx context.Context, token string, teamID int64) (entities.TeamStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return entities.TeamStats{}, err
	}
	return u.repo.TeamStats(ctx, teamID)
}
