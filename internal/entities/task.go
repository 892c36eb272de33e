// Package entities contains core business entities.
package entities

import "time"

// Task is a unit of team work.
type Task struct {
	ID          int64
	TeamID      int64
	Title       string
	Description string
	Done        bool
	CreatedAt   time.Time
}

// Comment is an authored note on a task. Only the author may mutate it.
type Comment struct {
	ID        int64
	TaskID    int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
}
