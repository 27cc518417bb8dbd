package board

import (
	"errors"

	"github.com/thenoetrevino/lanes/internal/models"
)

// Board store errors
var (
	// Validation errors
	ErrEmptyTitle  = models.ErrEmptyTitle
	ErrUnknownLane = models.ErrUnknownLane

	// ErrTaskNotFound is returned by lookups; mutations report a missing
	// task as an unchanged board instead
	ErrTaskNotFound = errors.New("task not found")
)
