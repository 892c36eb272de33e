// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"team-focus-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes identity-store operations. Uniqueness of username and
// token is enforced by the implementation.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
	GetUserByToken(ctx context.Context, token string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TeamInterface exposes team-registry operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID int64) (*entities.Team, error)
	GetTeamByInviteUUID(ctx context.Context, inviteUUID string) (*entities.Team, error)
}

// MembershipInterface exposes the team/user membership ledger. The composite
// (team, user) pair is the identity of a link; a pair exists at most once.
type MembershipInterface interface {
	AddMember(ctx context.Context, teamID, userID int64) (*entities.Membership, error)
	RemoveMember(ctx context.Context, teamID, userID int64) (*entities.Membership, error)
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
	TeamsOf(ctx context.Context, userID int64) ([]entities.Team, error)
	MembersOf(ctx context.Context, teamID int64) ([]entities.User, error)
}

// SessionInterface exposes the session lifecycle. Implementations must
// guarantee at most one open session per team under concurrent starts.
type SessionInterface interface {
	StartSession(ctx context.Context, teamID int64, goalMinutes int) (*entities.Session, error)
	EndSession(ctx context.Context, teamID int64) (*entities.Session, error)
	ListSessions(ctx context.Context, teamID int64, order entities.SortOrder) ([]entities.Session, error)
}

// TaskInterface exposes task and comment operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	ListTasks(ctx context.Context, teamID int64) ([]entities.Task, error)
	SetTaskDone(ctx context.Context, taskID int64, done bool) (*entities.Task, error)
	GetTask(ctx context.Context, taskID int64) (*entities.Task, error)
	CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*entities.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, body string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ListComments(ctx context.Context, taskID int64) ([]entities.Comment, error)
}

// StatsInterface exposes aggregated focus statistics.
type StatsInterface interface {
	TeamStats(ctx context.Context, teamID int64) (entities.TeamStats, error)
}
