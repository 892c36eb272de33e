package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-focus-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	teamExistsQuery = `SELECT EXISTS(SELECT 1 FROM teams WHERE id=$1)`
	userExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`

	insertMemberQuery = `
INSERT INTO team_members(team_id, user_id)
VALUES ($1, $2)
RETURNING joined_at`
	deleteMemberQuery = `
DELETE FROM team_members
WHERE team_id=$1 AND user_id=$2
RETURNING joined_at`
	memberExistsQuery = `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id=$1 AND user_id=$2)`

	selectTeamsOfQuery = `
SELECT t.id, t.name, t.description, t.invite_uuid
FROM team_members m
JOIN teams t ON t.id = m.team_id
WHERE m.user_id=$1
ORDER BY m.joined_at`
	selectMembersOfQuery = `
SELECT u.id, u.name, u.username, u.password_hash, u.token
FROM team_members m
JOIN users u ON u.id = m.user_id
WHERE m.team_id=$1
ORDER BY m.joined_at`
)

// AddMember links a user to a team. The composite primary key makes a
// duplicate link impossible; its violation surfaces as ErrAlreadyMember.
func (p *Postgres) AddMember(ctx context.Context, teamID, userID int64) (*entities.Membership, error) {
	if err := p.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := p.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	m := entities.Membership{TeamID: teamID, UserID: userID}
	if err := p.db.QueryRow(ctx, insertMemberQuery, teamID, userID).Scan(&m.JoinedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrAlreadyMember
			case "23503":
				// Row vanished between the existence check and the insert.
				return nil, entities.ErrTeamNotFound
			}
		}
		p.log.Errorw("failed to add member", "error", err, "team_id", teamID, "user_id", userID)
		return nil, fmt.Errorf("add member: %w", err)
	}

	p.log.Infow("member linked", "team_id", teamID, "user_id", userID)
	return &m, nil
}

// RemoveMember unlinks a user from a team.
func (p *Postgres) RemoveMember(ctx context.Context, teamID, userID int64) (*entities.Membership, error) {
	if err := p.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := p.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	m := entities.Membership{TeamID: teamID, UserID: userID}
	if err := p.db.QueryRow(ctx, deleteMemberQuery, teamID, userID).Scan(&m.JoinedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMembershipNotFound
		}
		p.log.Errorw("failed to remove member", "error", err, "team_id", teamID, "user_id", userID)
		return nil, fmt.Errorf("remove member: %w", err)
	}

	p.log.Infow("member unlinked", "team_id", teamID, "user_id", userID)
	return &m, nil
}

// IsMember reports whether the (team, user) link exists.
func (p *Postgres) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, memberExistsQuery, teamID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	return exists, nil
}

// TeamsOf returns the teams reachable through the user's memberships.
func (p *Postgres) TeamsOf(ctx context.Context, userID int64) ([]entities.Team, error) {
	if err := p.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, selectTeamsOfQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("teams of user: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.InviteUUID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// MembersOf returns the users reachable through the team's memberships.
func (p *Postgres) MembersOf(ctx context.Context, teamID int64) ([]entities.User, error) {
	if err := p.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, selectMembersOfQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("members of team: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Token); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return users, nil
}

func (p *Postgres) requireTeam(ctx context.Context, teamID int64) error {
	var exists bool
	if err := p.db.QueryRow(ctx, teamExistsQuery, teamID).Scan(&exists); err != nil {
		return fmt.Errorf("team lookup: %w", err)
	}
	if !exists {
		return entities.ErrTeamNotFound
	}
	return nil
}

func (p *Postgres) requireUser(ctx context.Context, userID int64) error {
	var exists bool
	if err := p.db.QueryRow(ctx, userExistsQuery, userID).Scan(&exists); err != nil {
		return fmt.Errorf("user lookup: %w", err)
	}
	if !exists {
		return entities.ErrUserNotFound
	}
	return nil
}
