package models

import (
	"fmt"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Board maps every lane to its ordered task sequence.
// Order within a lane is display order; new and moved tasks go to the tail.
type Board map[Lane][]Task

// NewBoard returns the default board with three empty lanes
func NewBoard() Board {
	b := make(Board, len(lanes))
	for _, lane := range lanes {
		b[lane] = []Task{}
	}
	return b
}

// Clone returns a deep copy; mutating the copy never affects b
func (b Board) Clone() Board {
	out := NewBoard()
	for _, lane := range lanes {
		if tasks := b[lane]; len(tasks) > 0 {
			out[lane] = append([]Task(nil), tasks...)
		}
	}
	return out
}

// IndexOf returns the position of id within lane, or -1
func (b Board) IndexOf(lane Lane, id types.TaskID) int {
	for i, t := range b[lane] {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find searches every lane for id
func (b Board) Find(id types.TaskID) (TaskLocation, bool) {
	for _, lane := range lanes {
		if i := b.IndexOf(lane, id); i >= 0 {
			return TaskLocation{Lane: lane, Task: b[lane][i]}, true
		}
	}
	return TaskLocation{}, false
}

// Len returns the total number of tasks on the board
func (b Board) Len() int {
	n := 0
	for _, lane := range lanes {
		n += len(b[lane])
	}
	return n
}

// Validate checks the ownership invariant: every identity is non-empty and
// appears exactly once across all lanes. Lanes outside the closed set are
// rejected as well.
func (b Board) Validate() error {
	seen := make(map[types.TaskID]Lane, b.Len())
	for lane, tasks := range b {
		if !lane.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownLane, lane)
		}
		for _, t := range tasks {
			if t.ID.IsZero() {
				return fmt.Errorf("%w: task %q in %s has no id", ErrInvalidBoard, t.Title, lane)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("%w: task %s appears in %s and %s", ErrInvalidBoard, t.ID, prev, lane)
			}
			seen[t.ID] = lane
		}
	}
	return nil
}
