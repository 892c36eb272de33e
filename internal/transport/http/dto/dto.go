// Package dto defines request and response shapes of the HTTP API.
package dto

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeInternal        ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code clients branch on and a human message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest verifies credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest changes profile fields; empty fields keep their value.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the public account shape. The token appears only in registration
// and login responses; the password hash never leaves the service.
type User struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Team is the public team shape.
type Team struct {
	TeamID      int64  `json:"team_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	InviteUUID  string `json:"invite_uuid"`
}

// AddMemberRequest links a user into a team.
type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

// Membership is the public link shape.
type Membership struct {
	TeamID   int64     `json:"team_id"`
	UserID   int64     `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// InvitationLinkResponse carries the shareable join link.
type InvitationLinkResponse struct {
	Link string `json:"link"`
}

// StartSessionRequest opens a focus session.
type StartSessionRequest struct {
	GoalMinutes int `json:"goal_minutes"`
}

// Session is the public session shape; ended_at is null while open.
type Session struct {
	SessionID   int64      `json:"session_id"`
	TeamID      int64      `json:"team_id"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
	GoalMinutes int        `json:"goal_minutes"`
}

// TeamStats is the aggregated focus history of a team.
type TeamStats struct {
	TeamID           int64 `json:"team_id"`
	SessionCount     int64 `json:"session_count"`
	CompletedCount   int64 `json:"completed_count"`
	GoalMinutesTotal int64 `json:"goal_minutes_total"`
	FocusedMinutes   int64 `json:"focused_minutes"`
	HasOpenSession   bool  `json:"has_open_session"`
}

// CreateTaskRequest creates a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest flips the done flag.
type UpdateTaskRequest struct {
	Done bool `json:"done"`
}

// Task is the public task shape.
type Task struct {
	TaskID      int64     `json:"task_id"`
	TeamID      int64     `json:"team_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentRequest creates or updates a comment body.
type CommentRequest struct {
	Body string `json:"body"`
}

// Comment is the public comment shape.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	TaskID    int64     `json:"task_id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
