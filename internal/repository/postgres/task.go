package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-focus-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(team_id, title, description)
VALUES ($1, $2, $3)
RETURNING id, done, created_at`
	selectTaskQuery = `SELECT id, team_id, title, description, done, created_at FROM tasks WHERE id=$1`
	listTasksQuery  = `
SELECT id, team_id, title, description, done, created_at
FROM tasks WHERE team_id=$1 ORDER BY created_at`
	setTaskDoneQuery = `
UPDATE tasks SET done=$2
WHERE id=$1
RETURNING id, team_id, title, description, done, created_at`

	insertCommentQuery = `
INSERT INTO comments(task_id, author_id, body)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	selectCommentQuery = `SELECT id, task_id, author_id, body, created_at FROM comments WHERE id=$1`
	updateCommentQuery = `
UPDATE comments SET body=$2
WHERE id=$1
RETURNING id, task_id, author_id, body, created_at`
	deleteCommentQuery = `DELETE FROM comments WHERE id=$1`
	listCommentsQuery  = `
SELECT id, task_id, author_id, body, created_at
FROM comments WHERE task_id=$1 ORDER BY created_at`
)

// CreateTask inserts a task for a team.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	err := p.db.QueryRow(ctx, insertTaskQuery, task.TeamID, task.Title, task.Description).
		Scan(&task.ID, &task.Done, &task.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert task", "error", err, "team_id", task.TeamID)
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", task.ID, "team_id", task.TeamID)
	return &task, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID int64) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, selectTaskQuery, taskID).
		Scan(&t.ID, &t.TeamID, &t.Title, &t.Description, &t.Done, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListTasks returns all tasks of a team in creation order.
func (p *Postgres) ListTasks(ctx context.Context, teamID int64) ([]entities.Task, error) {
	if err := p.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, listTasksQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.TeamID, &t.Title, &t.Description, &t.Done, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// SetTaskDone flips the done flag.
func (p *Postgres) SetTaskDone(ctx context.Context, taskID int64, done bool) (*entities.Task, error) {
	var t entities.Task
	err := p.db.QueryRow(ctx, setTaskDoneQuery, taskID, done).
		Scan(&t.ID, &t.TeamID, &t.Title, &t.Description, &t.Done, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to set task done", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("set task done: %w", err)
	}

	p.log.Infow("task done updated", "task_id", taskID, "done", done)
	return &t, nil
}

// CreateComment inserts an authored comment on a task.
func (p *Postgres) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	err := p.db.QueryRow(ctx, insertCommentQuery, comment.TaskID, comment.AuthorID, comment.Body).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTaskNotFound
		}
		p.log.Errorw("failed to insert comment", "error", err, "task_id", comment.TaskID)
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	p.log.Infow("comment created", "comment_id", comment.ID, "task_id", comment.TaskID)
	return &comment, nil
}

// GetComment fetches a comment by id.
func (p *Postgres) GetComment(ctx context.Context, commentID int64) (*entities.Comment, error) {
	var c entities.Comment
	err := p.db.QueryRow(ctx, selectCommentQuery, commentID).
		Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// UpdateComment rewrites the comment body.
func (p *Postgres) UpdateComment(ctx context.Context, commentID int64, body string) (*entities.Comment, error) {
	var c entities.Comment
	err := p.db.QueryRow(ctx, updateCommentQuery, commentID, body).
		Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCommentNotFound
		}
		p.log.Errorw("failed to update comment", "error", err, "comment_id", commentID)
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment.
func (p *Postgres) DeleteComment(ctx context.Context, commentID int64) error {
	tag, err := p.db.Exec(ctx, deleteCommentQuery, commentID)
	if err != nil {
		p.log.Errorw("failed to delete comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCommentNotFound
	}
	return nil
}

// ListComments returns all comments of a task in creation order.
func (p *Postgres) ListComments(ctx context.Context, taskID int64) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, listCommentsQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
