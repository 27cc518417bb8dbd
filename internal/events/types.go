package events

import (
	"time"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardLoaded EventType = "board_loaded"
	EventTaskCreated EventType = "task_created"
	EventTaskUpdated EventType = "task_updated"
	EventTaskDeleted EventType = "task_deleted"
	EventTaskMoved   EventType = "task_moved"
)

// Event represents a board change notification
type Event struct {
	Type      EventType
	TaskID    types.TaskID
	Lane      models.Lane // lane the task ended up in; the source lane for deletes
	From      models.Lane // source lane for moves, empty otherwise
	Timestamp time.Time   // When the event occurred
	Sequence  int64       // Monotonically increasing sequence number for ordering
}

// eventFromChange maps a store change notification onto an Event
func eventFromChange(c board.Change) Event {
	e := Event{TaskID: c.TaskID, Lane: c.To}
	switch c.Kind {
	case board.ChangeLoaded:
		e.Type = EventBoardLoaded
	case board.ChangeCreated:
		e.Type = EventTaskCreated
	case board.ChangeUpdated:
		e.Type = EventTaskUpdated
	case board.ChangeDeleted:
		e.Type = EventTaskDeleted
		e.Lane = c.From
	case board.ChangeMoved:
		e.Type = EventTaskMoved
		e.From = c.From
	}
	return e
}
