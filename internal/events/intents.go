package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// ErrUnknownIntent is returned by Apply for an intent type it doesn't know
var ErrUnknownIntent = errors.New("unknown intent")

// TaskStore is the part of the board store the intents drive
type TaskStore interface {
	Create(ctx context.Context, lane models.Lane, title, description string) (*models.Task, error)
	Update(ctx context.Context, id types.TaskID, lane models.Lane, title, description string) (bool, error)
	Delete(ctx context.Context, id types.TaskID, lane models.Lane) (bool, error)
	Move(ctx context.Context, id types.TaskID, from, to models.Lane) (bool, error)
}

// Intent is a discrete user request raised by a view
type Intent interface {
	intent()
}

// CreateIntent asks for a new task at the tail of Lane
type CreateIntent struct {
	Lane        models.Lane
	Title       string
	Description string
}

// UpdateIntent asks to replace the title and description of a task in Lane
type UpdateIntent struct {
	TaskID      types.TaskID
	Lane        models.Lane
	Title       string
	Description string
}

// DeleteIntent asks to remove a task from Lane
type DeleteIntent struct {
	TaskID types.TaskID
	Lane   models.Lane
}

// MoveIntent asks to move a task from one lane to the tail of another.
// Views resolve the full triple before raising it.
type MoveIntent struct {
	TaskID types.TaskID
	From   models.Lane
	To     models.Lane
}

func (CreateIntent) intent() {}
func (UpdateIntent) intent() {}
func (DeleteIntent) intent() {}
func (MoveIntent) intent()   {}

// Result reports what applying an intent did
type Result struct {
	Changed bool
	Task    *models.Task // set for creates
}

// Apply dispatches intent to the store.
// A save failure still reports the in-memory change in Result.
func Apply(ctx context.Context, store TaskStore, intent Intent) (Result, error) {
	switch in := intent.(type) {
	case CreateIntent:
		task, err := store.Create(ctx, in.Lane, in.Title, in.Description)
		return Result{Changed: task != nil, Task: task}, err
	case UpdateIntent:
		changed, err := store.Update(ctx, in.TaskID, in.Lane, in.Title, in.Description)
		return Result{Changed: changed}, err
	case DeleteIntent:
		changed, err := store.Delete(ctx, in.TaskID, in.Lane)
		return Result{Changed: changed}, err
	case MoveIntent:
		changed, err := store.Move(ctx, in.TaskID, in.From, in.To)
		return Result{Changed: changed}, err
	}
	return Result{}, fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
}
