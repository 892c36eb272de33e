// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"team-focus-service/internal/entities"
	"team-focus-service/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to its public shape, omitting the token.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		UserID:   u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

// ToDTOUserWithToken maps entities.User including the bearer token; used only
// for registration and login responses.
func ToDTOUserWithToken(u entities.User) dto.User {
	d := ToDTOUser(u)
	d.Token = u.Token
	return d
}

// ToDTOUserList maps a slice of users, tokens omitted.
func ToDTOUserList(list []entities.User) []dto.User {
	res := make([]dto.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToDTOUser(u))
	}
	return res
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(t entities.Team) dto.Team {
	return dto.Team{
		TeamID:      t.ID,
		Name:        t.Name,
		Description: t.Description,
		InviteUUID:  t.InviteUUID,
	}
}

// ToDTOTeamList maps a slice of teams.
func ToDTOTeamList(list []entities.Team) []dto.Team {
	res := make([]dto.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTeam(t))
	}
	return res
}

// ToDTOMembership maps entities.Membership to transport model.
func ToDTOMembership(m entities.Membership) dto.Membership {
	return dto.Membership{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt,
	}
}

// ToDTOSession maps entities.Session to transport model.
func ToDTOSession(s entities.Session) dto.Session {
	return dto.Session{
		SessionID:   s.ID,
		TeamID:      s.TeamID,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		GoalMinutes: s.GoalMinutes,
	}
}

// ToDTOSessionList maps a slice of sessions.
func ToDTOSessionList(list []entities.Session) []dto.Session {
	res := make([]dto.Session, 0, len(list))
	for _, s := range list {
		res = append(res, ToDTOSession(s))
	}
	return res
}

// ToDTOTeamStats maps entities.TeamStats to transport model.
func ToDTOTeamStats(s entities.TeamStats) dto.TeamStats {
	return dto.TeamStats{
		TeamID:           s.TeamID,
		SessionCount:     s.SessionCount,
		CompletedCount:   s.CompletedCount,
		GoalMinutesTotal: s.GoalMinutesTotal,
		FocusedMinutes:   s.FocusedMinutes,
		HasOpenSession:   s.HasOpenSession,
	}
}

// ToDTOTask maps entities.Task to transport model.
func ToDTOTask(t entities.Task) dto.Task {
	return dto.Task{
		TaskID:      t.ID,
		TeamID:      t.TeamID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
	}
}

// ToDTOTaskList maps a slice of tasks.
func ToDTOTaskList(list []entities.Task) []dto.Task {
	res := make([]dto.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTask(t))
	}
	return res
}

// ToDTOComment maps entities.Comment to transport model.
func ToDTOComment(c entities.Comment) dto.Comment {
	return dto.Comment{
		CommentID: c.ID,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// ToDTOCommentList maps a slice of comments.
func ToDTOCommentList(list []entities.Comment) []dto.Comment {
	res := make([]dto.Comment, 0, len(list))
	for _, c := range list {
		res = append(res, ToDTOComment(c))
	}
	return res
}
