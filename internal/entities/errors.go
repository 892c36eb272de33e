// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthenticated is returned when no user holds the presented token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals an authenticated user without entitlement to the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken signals a username uniqueness conflict.
	ErrUsernameTaken = errors.New("username taken")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMembershipNotFound signals a missing (team, user) link.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrAlreadyMember signals a duplicate (team, user) link.
	ErrAlreadyMember = errors.New("already a member")
	// ErrSessionActive signals that the team already has an open session.
	ErrSessionActive = errors.New("session already active")
	// ErrNoActiveSession signals an end attempt while the team is idle.
	ErrNoActiveSession = errors.New("no active session")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrCommentNotFound signals missing comment.
	ErrCommentNotFound = errors.New("comment not found")
)
