package board

import (
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// ChangeKind identifies which store operation changed the board
type ChangeKind string

const (
	ChangeLoaded  ChangeKind = "loaded"
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
	ChangeMoved   ChangeKind = "moved"
)

// Change describes one applied mutation.
// From is empty for creates, To is empty for deletes; both are empty for loads.
type Change struct {
	Kind   ChangeKind
	TaskID types.TaskID
	From   models.Lane
	To     models.Lane
}

// Observer is called after each change, with the store lock held.
// Observers must return quickly and must not call back into the Store.
type Observer func(Change)

func (s *Store) notify(c Change) {
	for _, obs := range s.observers {
		obs(c)
	}
}
