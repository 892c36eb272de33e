package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-focus-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery = `
INSERT INTO teams(name, description, invite_uuid)
VALUES ($1, $2, $3)
RETURNING id`
	selectTeamByIDQuery   = `SELECT id, name, description, invite_uuid FROM teams WHERE id=$1`
	selectTeamByUUIDQuery = `SELECT id, name, description, invite_uuid FROM teams WHERE invite_uuid=$1`
)

// CreateTeam inserts a team with its pre-assigned invitation uuid.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	err := p.db.QueryRow(ctx, insertTeamQuery, team.Name, team.Description, team.InviteUUID).
		Scan(&team.ID)
	if err != nil {
		p.log.Errorw("failed to insert team", "error", err, "team", team.Name)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", team.ID, "team", team.Name)
	return &team, nil
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, teamID int64) (*entities.Team, error) {
	return p.scanTeam(ctx, selectTeamByIDQuery, teamID)
}

// GetTeamByInviteUUID resolves the externally shared invitation handle.
func (p *Postgres) GetTeamByInviteUUID(ctx context.Context, inviteUUID string) (*entities.Team, error) {
	return p.scanTeam(ctx, selectTeamByUUIDQuery, inviteUUID)
}

func (p *Postgres) scanTeam(ctx context.Context, query string, arg any) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, query, arg).
		Scan(&t.ID, &t.Name, &t.Description, &t.InviteUUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}
