package models

import (
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Task represents a single work item on the board
type Task struct {
	ID          types.TaskID
	Title       string
	Description string
	CreatedAt   time.Time
}

// GetID lets output formatters print the id in quiet mode
func (t *Task) GetID() string {
	return t.ID.String()
}

// TaskLocation pairs a task with the lane that currently owns it
type TaskLocation struct {
	Lane Lane
	Task Task
}
