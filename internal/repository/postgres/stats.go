package postgres

import (
	"context"
	"fmt"

	"team-focus-service/internal/entities"
)

const teamStatsQuery = `
SELECT
    COUNT(*) AS session_count,
    COUNT(*) FILTER (WHERE ended_at IS NOT NULL) AS completed_count,
    COALESCE(SUM(goal_minutes), 0) AS goal_minutes_total,
    COALESCE(SUM(FLOOR(EXTRACT(EPOCH FROM (ended_at - started_at)) / 60)) FILTER (WHERE ended_at IS NOT NULL), 0)::bigint AS focused_minutes,
    COUNT(*) FILTER (WHERE ended_at IS NULL) > 0 AS has_open
FROM sessions
WHERE team_id=$1`

// TeamStats aggregates the team's focus history in a single query.
func (p *Postgres) TeamStats(ctx context.Context, teamID int64) (entities.TeamStats, error) {
	stats := entities.TeamStats{TeamID: teamID}

	if err := p.requireTeam(ctx, teamID); err != nil {
		return stats, err
	}

	err := p.db.QueryRow(ctx, teamStatsQuery, teamID).Scan(
		&stats.SessionCount,
		&stats.CompletedCount,
		&stats.GoalMinutesTotal,
		&stats.FocusedMinutes,
		&stats.HasOpenSession,
	)
	if err != nil {
		p.log.Errorw("failed to query team stats", "error", err, "team_id", teamID)
		return stats, fmt.Errorf("team stats: %w", err)
	}

	return stats, nil
}
