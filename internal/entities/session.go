// Package entities contains core business entities.
package entities

import "time"

// SortOrder selects session listing direction.
type SortOrder string

const (
	// OrderAsc sorts by start time ascending.
	OrderAsc SortOrder = "asc"
	// OrderDesc sorts by start time descending.
	OrderDesc SortOrder = "desc"
)

// Session is a timed focus period owned by exactly one team.
// EndedAt == nil means the session is open; a team has at most one open
// session at any time.
type Session struct {
	ID          int64
	TeamID      int64
	StartedAt   time.Time
	EndedAt     *time.Time
	GoalMinutes int
}

// Open reports whether the session is still running.
func (s Session) Open() bool {
	return s.EndedAt == nil
}
