package usecase

import (
	"context"

	"team-focus-service/internal/entities"
)

// AuthUsecaseInterface abstracts token resolution and entitlement checks.
type AuthUsecaseInterface interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
	RequireMember(ctx context.Context, token string, teamID int64) (*entities.User, error)
	RequireOwner(ctx context.Context, token string, ownerUserID int64) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*entities.User, error)
}

// UserUsecaseInterface abstracts account operations.
type UserUsecaseInterface interface {
	Register(ctx context.Context, name, username, password string) (*entities.User, error)
	UpdateProfile(ctx context.Context, token, name, username, password string) (*entities.User, error)
	DeleteAccount(ctx context.Context, token string) error
}

// TeamUsecaseInterface abstracts team operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, token, name, description string) (*entities.Team, error)
	Team(ctx context.Context, token string, teamID int64) (*entities.Team, error)
	MyTeams(ctx context.Context, token string) ([]entities.Team, error)
	InvitationLink(ctx context.Context, token string, teamID int64) (string, error)
	TeamStats(ctx context.Context, token string, teamID int64) (entities.TeamStats, error)
}

// MembershipUsecaseInterface abstracts the membership ledger.
type MembershipUsecaseInterface interface {
	AddMember(ctx context.Context, token string, teamID, userID int64) (*entities.Membership, error)
	JoinByInvitation(ctx context.Context, token, inviteUUID string) (*entities.Team, error)
	RemoveMember(ctx context.Context, token string, teamID, userID int64) (*entities.Membership, error)
	Members(ctx context.Context, token string, teamID int64) ([]entities.User, error)
}

// SessionUsecaseInterface abstracts the session lifecycle.
type SessionUsecaseInterface interface {
	StartSession(ctx context.Context, token string, teamID int64, goalMinutes int) (*entities.Session, error)
	EndSession(ctx context.Context, token string, teamID int64) (*entities.Session, error)
	Sessions(ctx context.Context, token string, teamID int64, order entities.SortOrder) ([]entities.Session, error)
}

// TaskUsecaseInterface abstracts tasks and comments.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, token string, teamID int64, title, description string) (*entities.Task, error)
	Tasks(ctx context.Context, token string, teamID int64) ([]entities.Task, error)
	SetTaskDone(ctx context.Context, token string, taskID int64, done bool) (*entities.Task, error)
	AddComment(ctx context.Context, token string, taskID int64, body string) (*entities.Comment, error)
	Comments(ctx context.Context, token string, taskID int64) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, token string, commentID int64, body string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, token string, commentID int64) error
}
