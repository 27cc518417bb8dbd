package models

import "errors"

// Domain-specific errors shared by the store, persistence and CLI layers
var (
	// ErrUnknownLane indicates a lane outside the todo/in-progress/done set
	ErrUnknownLane = errors.New("unknown lane")

	// ErrEmptyTitle indicates a create or update with a blank title
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrNoSavedBoard indicates that no board has been persisted yet
	ErrNoSavedBoard = errors.New("no saved board")

	// ErrInvalidBoard indicates a board that breaks the ownership invariant
	ErrInvalidBoard = errors.New("invalid board")

	// ErrNoNextLane indicates that the task is already in the last lane
	ErrNoNextLane = errors.New("task is already in the last lane")

	// ErrNoPrevLane indicates that the task is already in the first lane
	ErrNoPrevLane = errors.New("task is already in the first lane")
)
