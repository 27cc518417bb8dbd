package models

import (
	"fmt"
	"strings"
)

// Lane is one of the three fixed board categories
type Lane string

const (
	LaneTodo       Lane = "todo"
	LaneInProgress Lane = "in-progress"
	LaneDone       Lane = "done"
)

// lanes holds the display order, left to right
var lanes = [...]Lane{LaneTodo, LaneInProgress, LaneDone}

// Lanes returns all lanes in display order
func Lanes() []Lane {
	out := make([]Lane, len(lanes))
	copy(out, lanes[:])
	return out
}

// ParseLane maps user input to a Lane.
// Matching is case-insensitive; "inProgress" and "in_progress" are accepted
// for the in-progress lane so that the persisted key spelling round-trips.
func ParseLane(s string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do":
		return LaneTodo, nil
	case "in-progress", "inprogress", "in_progress", "doing":
		return LaneInProgress, nil
	case "done":
		return LaneDone, nil
	}
	return "", fmt.Errorf("%w: %q (must be: todo, in-progress, done)", ErrUnknownLane, s)
}

// Valid reports whether l is a member of the closed lane set
func (l Lane) Valid() bool {
	return l.Index() >= 0
}

// Index returns the display position of the lane, or -1 if unknown
func (l Lane) Index() int {
	for i, lane := range lanes {
		if lane == l {
			return i
		}
	}
	return -1
}

// Next returns the lane to the right; ok is false at the last lane
func (l Lane) Next() (Lane, bool) {
	i := l.Index()
	if i < 0 || i == len(lanes)-1 {
		return l, false
	}
	return lanes[i+1], true
}

// Prev returns the lane to the left; ok is false at the first lane
func (l Lane) Prev() (Lane, bool) {
	i := l.Index()
	if i <= 0 {
		return l, false
	}
	return lanes[i-1], true
}

// Title is the human readable lane heading
func (l Lane) Title() string {
	switch l {
	case LaneTodo:
		return "To Do"
	case LaneInProgress:
		return "In Progress"
	case LaneDone:
		return "Done"
	}
	return string(l)
}

func (l Lane) String() string {
	return string(l)
}
