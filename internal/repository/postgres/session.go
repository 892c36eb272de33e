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
	lockTeamQuery        = `SELECT id FROM teams WHERE id=$1 FOR UPDATE`
	openSessionExistsQue = `SELECT EXISTS(SELECT 1 FROM sessions WHERE team_id=$1 AND ended_at IS NULL)`
	insertSessionQuery   = `
INSERT INTO sessions(team_id, goal_minutes)
VALUES ($1, $2)
RETURNING id, started_at`
	closeSessionQuery = `
UPDATE sessions SET ended_at=NOW()
WHERE team_id=$1 AND ended_at IS NULL
RETURNING id, started_at, ended_at, goal_minutes`
	listSessionsAscQuery = `
SELECT id, team_id, started_at, ended_at, goal_minutes
FROM sessions WHERE team_id=$1 ORDER BY started_at ASC`
	listSessionsDescQuery = `
SELECT id, team_id, started_at, ended_at, goal_minutes
FROM sessions WHERE team_id=$1 ORDER BY started_at DESC`
)

// StartSession opens a focus session for the team. The team row is locked for
// the duration of the check-and-insert, so two concurrent starts serialize and
// the loser observes the open session. The partial unique index on
// sessions(team_id) WHERE ended_at IS NULL backstops the same invariant.
func (p *Postgres) StartSession(ctx context.Context, teamID int64, goalMinutes int) (*entities.Session, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var lockedID int64
	if err := tx.QueryRow(ctx, lockTeamQuery, teamID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("lock team: %w", err)
	}

	var open bool
	if err := tx.QueryRow(ctx, openSessionExistsQue, teamID).Scan(&open); err != nil {
		return nil, fmt.Errorf("open session lookup: %w", err)
	}
	if open {
		return nil, entities.ErrSessionActive
	}

	s := entities.Session{TeamID: teamID, GoalMinutes: goalMinutes}
	if err := tx.QueryRow(ctx, insertSessionQuery, teamID, goalMinutes).Scan(&s.ID, &s.StartedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrSessionActive
		}
		p.log.Errorw("failed to insert session", "error", err, "team_id", teamID)
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("session started", "team_id", teamID, "session_id", s.ID, "goal_minutes", goalMinutes)
	return &s, nil
}

// EndSession closes the team's open session. The single UPDATE is atomic on
// its own; the team lookup only disambiguates the no-rows outcome.
func (p *Postgres) EndSession(ctx context.Context, teamID int64) (*entities.Session, error) {
	s := entities.Session{TeamID: teamID}
	err := p.db.QueryRow(ctx, closeSessionQuery, teamID).
		Scan(&s.ID, &s.StartedAt, &s.EndedAt, &s.GoalMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if reqErr := p.requireTeam(ctx, teamID); reqErr != nil {
				return nil, reqErr
			}
			return nil, entities.ErrNoActiveSession
		}
		p.log.Errorw("failed to end session", "error", err, "team_id", teamID)
		return nil, fmt.Errorf("end session: %w", err)
	}

	p.log.Infow("session ended", "team_id", teamID, "session_id", s.ID)
	return &s, nil
}

// ListSessions returns all sessions of a team ordered by start time.
func (p *Postgres) ListSessions(ctx context.Context, teamID int64, order entities.SortOrder) ([]entities.Session, error) {
	if err := p.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	query := listSessionsAscQuery
	if order == entities.OrderDesc {
		query = listSessionsDescQuery
	}

	rows, err := p.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]entities.Session, 0)
	for rows.Next() {
		var s entities.Session
		if err := rows.Scan(&s.ID, &s.TeamID, &s.StartedAt, &s.EndedAt, &s.GoalMinutes); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
