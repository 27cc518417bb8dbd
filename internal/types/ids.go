package types

import "github.com/google/uuid"

// TaskID identifies a task across the whole board.
// It is an opaque token; callers must not parse it.
type TaskID string

// NewTaskID returns a fresh random (version 4) identity token
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// String implements fmt.Stringer
func (id TaskID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id TaskID) IsZero() bool {
	return id == ""
}
