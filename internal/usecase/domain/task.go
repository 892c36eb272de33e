// Package domain contains application usecases orchestrating the core rules by task.
package domain

import (
	"context"
	"fmt"
	"strings"

	"team-focus-service/internal/entities"
)

// CreateTask creates a task in the caller's team.
func (u *Usecase) CreateTask(ctx context.Context, token string, teamID int64, title, description string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTask(ctx, entities.Task{TeamID: teamID, Title: title, Description: description})
}

// Tasks lists the team's tasks, members only.
func (u *Usecase) Tasks(ctx context.Context, token string, teamID int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.RequireMember(ctx, token, teamID); err != nil {
		return nil, err
	}
	return u.repo.ListTasks(ctx, teamID)
}

// SetTaskDone flips a task's done flag; the caller must belong to its team.
func (u *Usecase) SetTaskDone(ctx context.Context, token string, taskID int64, done bool) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := u.RequireMember(ctx, token, task.TeamID); err != nil {
		return nil, err
	}

	return u.repo.SetTaskDone(ctx, taskID, done)
}

// AddComment attaches an authored comment to a task in the caller's team.
func (u *Usecase) AddComment(ctx context.Context, token string, taskID int64, body string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	usr, err := u.RequireMember(ctx, token, task.TeamID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateComment(ctx, entities.Comment{TaskID: taskID, AuthorID: usr.ID, Body: body})
}

// Comments lists a task's comments, members only.
func (u *Usecase) Comments(ctx context.Context, token string, taskID int64) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := u.RequireMember(ctx, token, task.TeamID); err != nil {
		return nil, err
	}

	return u.repo.ListComments(ctx, taskID)
}

// UpdateComment rewrites a comment's body; only the author may do so.
func (u *Usecase) UpdateComment(ctx context.Context, token string, commentID int64, body string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	comment, err := u.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if _, err := u.RequireOwner(ctx, token, comment.AuthorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateComment(ctx, commentID, body)
}

// DeleteComment removes a comment; only the author may do so.
func (u *Usecase) DeleteComment(ctx context.Context, token string, commentID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	comment, err := u.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if _, err := u.RequireOwner(ctx, token, comment.AuthorID); err != nil {
		return err
	}

	return u.repo.DeleteComment(ctx, commentID)
}
