// Package entities contains core business entities.
package entities

import "time"

// MembershipKey is the composite identity of a (team, user) link.
// The pair itself is the primary key; a given pair exists at most once.
type MembershipKey struct {
	TeamID int64
	UserID int64
}

// Membership links exactly one user to exactly one team.
type Membership struct {
	TeamID   int64
	UserID   int64
	JoinedAt time.Time
}

// Key returns the composite identity of the link.
func (m Membership) Key() MembershipKey {
	return MembershipKey{TeamID: m.TeamID, UserID: m.UserID}
}
