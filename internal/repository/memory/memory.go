// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"team-focus-service/internal/entities"
)

// Memory stores all state behind a single mutex, which also serializes session
// transitions the way the transactional store does. Memberships are keyed by
// the composite (team, user) identity, so a duplicate link is structurally
// impossible.
type Memory struct {
	mu sync.Mutex

	users       map[int64]entities.User
	teams       map[int64]entities.Team
	memberships map[entities.MembershipKey]entities.Membership
	sessions    map[int64][]entities.Session
	tasks       map[int64]entities.Task
	comments    map[int64]entities.Comment

	userIDCounter    int64
	teamIDCounter    int64
	sessionIDCounter int64
	taskIDCounter    int64
	commentIDCounter int64
}

// New creates an empty in-memory backend.
func New() *Memory {
	return &Memory{
		users:       make(map[int64]entities.User),
		teams:       make(map[int64]entities.Team),
		memberships: make(map[entities.MembershipKey]entities.Membership),
		sessions:    make(map[int64][]entities.Session),
		tasks:       make(map[int64]entities.Task),
		comments:    make(map[int64]entities.Comment),
	}
}

// OnStart implements the lifecycle hook.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop implements the lifecycle hook.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// --- UserInterface ---

// CreateUser stores a user, enforcing username uniqueness.
func (m *Memory) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, entities.ErrUsernameTaken
		}
	}

	m.userIDCounter++
	user.ID = m.userIDCounter
	m.users[user.ID] = user
	return &user, nil
}

// GetUser fetches a user by id.
func (m *Memory) GetUser(_ context.Context, userID int64) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userLocked(userID)
}

// GetUserByToken resolves the opaque bearer token to a user.
func (m *Memory) GetUserByToken(_ context.Context, token string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Token == token {
			u := u
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// GetUserByUsername fetches a user by its unique username.
func (m *Memory) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// UpdateUser rewrites profile fields, keeping the stored token.
func (m *Memory) UpdateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.ID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	for id, u := range m.users {
		if id != user.ID && u.Username == user.Username {
			return nil, entities.ErrUsernameTaken
		}
	}

	stored.Name = user.Name
	stored.Username = user.Username
	stored.PasswordHash = user.PasswordHash
	m.users[user.ID] = stored
	return &stored, nil
}

// DeleteUser removes a user and cascades its memberships and comments.
func (m *Memory) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return entities.ErrUserNotFound
	}
	delete(m.users, userID)
	for key := range m.memberships {
		if key.UserID == userID {
			delete(m.memberships, key)
		}
	}
	for id, c := range m.comments {
		if c.AuthorID == userID {
			delete(m.comments, id)
		}
	}
	return nil
}

// --- TeamInterface ---

// CreateTeam stores a team.
func (m *Memory) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teamIDCounter++
	team.ID = m.teamIDCounter
	m.teams[team.ID] = team
	return &team, nil
}

// GetTeam fetches a team by id.
func (m *Memory) GetTeam(_ context.Context, teamID int64) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamLocked(teamID)
}

// GetTeamByInviteUUID resolves the invitation handle.
func (m *Memory) GetTeamByInviteUUID(_ context.Context, inviteUUID string) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.teams {
		if t.InviteUUID == inviteUUID {
			t := t
			return &t, nil
		}
	}
	return nil, entities.ErrTeamNotFound
}

// --- MembershipInterface ---

// AddMember links a user to a team. The map key is the composite identity, so
// the at-most-one-link invariant holds without a separate uniqueness check.
func (m *Memory) AddMember(_ context.Context, teamID, userID int64) (*entities.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}

	key := entities.MembershipKey{TeamID: teamID, UserID: userID}
	if _, ok := m.memberships[key]; ok {
		return nil, entities.ErrAlreadyMember
	}

	link := entities.Membership{TeamID: teamID, UserID: userID, JoinedAt: time.Now().UTC()}
	m.memberships[key] = link
	return &link, nil
}

// RemoveMember unlinks a user from a team.
func (m *Memory) RemoveMember(_ context.Context, teamID, userID int64) (*entities.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}

	key := entities.MembershipKey{TeamID: teamID, UserID: userID}
	link, ok := m.memberships[key]
	if !ok {
		return nil, entities.ErrMembershipNotFound
	}
	delete(m.memberships, key)
	return &link, nil
}

// IsMember reports whether the (team, user) link exists.
func (m *Memory) IsMember(_ context.Context, teamID, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.memberships[entities.MembershipKey{TeamID: teamID, UserID: userID}]
	return ok, nil
}

// TeamsOf returns the teams reachable through the user's memberships.
func (m *Memory) TeamsOf(_ context.Context, userID int64) ([]entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, entities.ErrUserNotFound
	}

	teams := make([]entities.Team, 0)
	for key := range m.memberships {
		if key.UserID == userID {
			teams = append(teams, m.teams[key.TeamID])
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

// MembersOf returns the users reachable through the team's memberships.
func (m *Memory) MembersOf(_ context.Context, teamID int64) ([]entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}

	users := make([]entities.User, 0)
	for key := range m.memberships {
		if key.TeamID == teamID {
			users = append(users, m.users[key.UserID])
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// --- SessionInterface ---

// StartSession opens a session unless the team already has one open. The
// mutex spans the check and the insert, so concurrent starts serialize.
func (m *Memory) StartSession(_ context.Context, teamID int64, goalMinutes int) (*entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}
	for _, s := range m.sessions[teamID] {
		if s.Open() {
			return nil, entities.ErrSessionActive
		}
	}

	m.sessionIDCounter++
	s := entities.Session{
		ID:          m.sessionIDCounter,
		TeamID:      teamID,
		StartedAt:   time.Now().UTC(),
		GoalMinutes: goalMinutes,
	}
	m.sessions[teamID] = append(m.sessions[teamID], s)
	return &s, nil
}

// EndSession closes the team's open session.
func (m *Memory) EndSession(_ context.Context, teamID int64) (*entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}
	list := m.sessions[teamID]
	for i := range list {
		if list[i].Open() {
			now := time.Now().UTC()
			list[i].EndedAt = &now
			ended := list[i]
			return &ended, nil
		}
	}
	return nil, entities.ErrNoActiveSession
}

// ListSessions returns all sessions of a team ordered by start time.
func (m *Memory) ListSessions(_ context.Context, teamID int64, order entities.SortOrder) ([]entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}

	list := append([]entities.Session(nil), m.sessions[teamID]...)
	sort.Slice(list, func(i, j int) bool {
		if order == entities.OrderDesc {
			return list[i].StartedAt.After(list[j].StartedAt)
		}
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list, nil
}

// --- TaskInterface ---

// CreateTask stores a task for a team.
func (m *Memory) CreateTask(_ context.Context, task entities.Task) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[task.TeamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}

	m.taskIDCounter++
	task.ID = m.taskIDCounter
	task.Done = false
	task.CreatedAt = time.Now().UTC()
	m.tasks[task.ID] = task
	return &task, nil
}

// ListTasks returns all tasks of a team in creation order.
func (m *Memory) ListTasks(_ context.Context, teamID int64) ([]entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[teamID]; !ok {
		return nil, entities.ErrTeamNotFound
	}

	tasks := make([]entities.Task, 0)
	for _, t := range m.tasks {
		if t.TeamID == teamID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// SetTaskDone flips the done flag.
func (m *Memory) SetTaskDone(_ context.Context, taskID int64, done bool) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[taskID]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	t.Done = done
	m.tasks[taskID] = t
	return &t, nil
}

// GetTask fetches a task by id.
func (m *Memory) GetTask(_ context.Context, taskID int64) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[taskID]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	return &t, nil
}

// CreateComment stores an authored comment on a task.
func (m *Memory) CreateComment(_ context.Context, comment entities.Comment) (*entities.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[comment.TaskID]; !ok {
		return nil, entities.ErrTaskNotFound
	}

	m.commentIDCounter++
	comment.ID = m.commentIDCounter
	comment.CreatedAt = time.Now().UTC()
	m.comments[comment.ID] = comment
	return &comment, nil
}

// GetComment fetches a comment by id.
func (m *Memory) GetComment(_ context.Context, commentID int64) (*entities.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[commentID]
	if !ok {
		return nil, entities.ErrCommentNotFound
	}
	return &c, nil
}

// UpdateComment rewrites the comment body.
func (m *Memory) UpdateComment(_ context.Context, commentID int64, body string) (*entities.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[commentID]
	if !ok {
		return nil, entities.ErrCommentNotFound
	}
	c.Body = body
	m.comments[commentID] = c
	return &c, nil
}

// DeleteComment removes a comment.
func (m *Memory) DeleteComment(_ context.Context, commentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[commentID]; !ok {
		return entities.ErrCommentNotFound
	}
	delete(m.comments, commentID)
	return nil
}

// ListComments returns all comments of a task in creation order.
func (m *Memory) ListComments(_ context.Context, taskID int64) ([]entities.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comments := make([]entities.Comment, 0)
	for _, c := range m.comments {
		if c.TaskID == taskID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// --- StatsInterface ---

// TeamStats aggregates the team's focus history.
func (m *Memory) TeamStats(_ context.Context, teamID int64) (entities.TeamStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := entities.TeamStats{TeamID: teamID}
	if _, ok := m.teams[teamID]; !ok {
		return stats, entities.ErrTeamNotFound
	}

	for _, s := range m.sessions[teamID] {
		stats.SessionCount++
		stats.GoalMinutesTotal += int64(s.GoalMinutes)
		if s.Open() {
			stats.HasOpenSession = true
			continue
		}
		stats.CompletedCount++
		stats.FocusedMinutes += int64(s.EndedAt.Sub(s.StartedAt) / time.Minute)
	}
	return stats, nil
}

func (m *Memory) userLocked(userID int64) (*entities.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (m *Memory) teamLocked(teamID int64) (*entities.Team, error) {
	t, ok := m.teams[teamID]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return &t, nil
}
