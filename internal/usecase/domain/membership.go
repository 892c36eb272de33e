// Package domain contains application usecases orchestrating the core rules by membership.
package domain

import (
	"context"

	"team-focus-service/internal/entities"
)

// AddMember links a user into the caller's team. The caller must already be a
// member; the ledger itself trusts the ids it is given.
func (u *Usecase) AddMember(ctx context.Context, token string, teamID, userID int64) (*entities.Membership, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	link, err := u.repo.AddMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	u.notifyMembershipChanged(teamID)
	return link, nil
}

// JoinByInvitation redeems a team's invitation uuid for the caller.
func (u *Usecase) JoinByInvitation(ctx context.Context, token, inviteUUID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	team, err := u.repo.GetTeamByInviteUUID(ctx, inviteUUID)
	if err != nil {
		return nil, err
	}

	if _, err := u.repo.AddMember(ctx, team.ID, usr.ID); err != nil {
		return nil, err
	}

	u.notifyMembershipChanged(team.ID)
	return team, nil
}

// RemoveMember unlinks a user from a team. Any current member may remove any
// member, including themselves; all members are equal.
func (u *Usecase) RemoveMember(ctx context.Context, token string, teamID, userID int64) (*entities.Membership, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	link, err := u.repo.RemoveMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	u.notifyMembershipChanged(teamID)
	return link, nil
}

// Members lists the team's users, visible to members only.
func (u *Usecase) Members(ctx context.Context, token string, teamID int64) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}
	return u.repo.MembersOf(ctx, teamID)
}
