// Package entities contains core business entities.
package entities

// TeamStats aggregates a team's focus history.
// FocusedMinutes counts only completed sessions, rounded down per session.
type TeamStats struct {
	TeamID           int64
	SessionCount     int64
	CompletedCount   int64
	GoalMinutesTotal int64
	FocusedMinutes   int64
	HasOpenSession   bool
}
