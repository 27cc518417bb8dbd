package state

import (
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// DragState tracks a grabbed task while it is being carried to a lane.
// The source lane is captured at grab time so the drop always resolves to
// a complete (task, from, to) triple.
type DragState struct {
	active bool
	taskID types.TaskID
	from   models.Lane
	target models.Lane
}

// NewDragState creates an idle drag state.
func NewDragState() *DragState {
	return &DragState{}
}

// Grab starts carrying id out of from.
func (s *DragState) Grab(id types.TaskID, from models.Lane) {
	s.active = true
	s.taskID = id
	s.from = from
	s.target = from
}

// Active reports whether a task is being carried.
func (s *DragState) Active() bool {
	return s.active
}

// TaskID returns the carried task.
func (s *DragState) TaskID() types.TaskID {
	return s.taskID
}

// From returns the lane the task was grabbed from.
func (s *DragState) From() models.Lane {
	return s.from
}

// Target returns the lane the task would land in now.
func (s *DragState) Target() models.Lane {
	return s.target
}

// SetTarget moves the drop target.
func (s *DragState) SetTarget(lane models.Lane) {
	s.target = lane
}

// Drop ends the drag and returns the resolved triple.
func (s *DragState) Drop() (id types.TaskID, from, to models.Lane) {
	id, from, to = s.taskID, s.from, s.target
	s.Clear()
	return id, from, to
}

// Clear abandons the drag.
func (s *DragState) Clear() {
	*s = DragState{}
}
