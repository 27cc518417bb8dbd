// Package board owns the in-memory kanban board and keeps its persisted
// copy in step with every mutation.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// Persister loads and saves a whole board.
// Load returns an error matching models.ErrNoSavedBoard when nothing has
// been saved yet; any other error is treated as corrupt or unreadable data.
type Persister interface {
	Load(ctx context.Context) (models.Board, error)
	Save(ctx context.Context, board models.Board) error
}

// LoadStatus describes where the current board came from
type LoadStatus int

const (
	LoadedFromStorage LoadStatus = iota // persisted board decoded fine
	LoadedDefaultMissing                // nothing persisted, started empty
	LoadedDefaultCorrupt                // persisted data discarded, started empty
)

func (s LoadStatus) String() string {
	switch s {
	case LoadedFromStorage:
		return "loaded"
	case LoadedDefaultMissing:
		return "missing"
	case LoadedDefaultCorrupt:
		return "corrupt"
	}
	return "unknown"
}

// Store holds the board and persists it after every change.
// A Store is safe for concurrent use; operations are serialized.
type Store struct {
	mu        sync.Mutex
	board     models.Board
	persister Persister
	observers []Observer
	now       func() time.Time
	newID     func() types.TaskID
	logger    *slog.Logger
}

// NewStore creates a store with an empty board. Call Load to restore the
// persisted board.
func NewStore(persister Persister, opts ...Option) *Store {
	s := &Store{
		board:     models.NewBoard(),
		persister: persister,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     types.NewTaskID,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory board with the persisted one.
// Missing or malformed data falls back to three empty lanes; the failure is
// logged, never returned.
func (s *Store) Load(ctx context.Context) LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := LoadedFromStorage
	board, err := s.persister.Load(ctx)
	switch {
	case errors.Is(err, models.ErrNoSavedBoard):
		s.logger.Debug("no persisted board, starting empty")
		board, status = models.NewBoard(), LoadedDefaultMissing
	case err != nil:
		s.logger.Error("error loading board, starting empty", "error", err)
		board, status = models.NewBoard(), LoadedDefaultCorrupt
	default:
		if verr := board.Validate(); verr != nil {
			s.logger.Error("persisted board is invalid, starting empty", "error", verr)
			board, status = models.NewBoard(), LoadedDefaultCorrupt
		} else {
			board = normalize(board)
		}
	}

	s.board = board
	s.notify(Change{Kind: ChangeLoaded})
	return status
}

// Save writes the whole board to the persister, overwriting the prior value
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// Create appends a new task to the tail of lane.
// Title and description are trimmed and made valid UTF-8; a blank title
// changes nothing.
func (s *Store) Create(ctx context.Context, lane models.Lane, title, description string) (*models.Task, error) {
	if !lane.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLane, lane)
	}
	title, description = cleanText(title), cleanText(description)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.board[lane] = append(s.board[lane], task)

	err := s.saveLocked(ctx)
	s.notify(Change{Kind: ChangeCreated, TaskID: task.ID, To: lane})
	return &task, err
}

// Update replaces title and description of the task in lane.
// Reports false with no error when the task isn't in that lane.
func (s *Store) Update(ctx context.Context, id types.TaskID, lane models.Lane, title, description string) (bool, error) {
	if !lane.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownLane, lane)
	}
	title, description = cleanText(title), cleanText(description)
	if title == "" {
		return false, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.board.IndexOf(lane, id)
	if i < 0 {
		s.logger.Debug("update skipped, task not in lane", "task", id, "lane", lane)
		return false, nil
	}
	s.board[lane][i].Title = title
	s.board[lane][i].Description = description

	err := s.saveLocked(ctx)
	s.notify(Change{Kind: ChangeUpdated, TaskID: id, From: lane, To: lane})
	return true, err
}

// Delete removes the task from lane.
// Reports false with no error when the task isn't in that lane.
func (s *Store) Delete(ctx context.Context, id types.TaskID, lane models.Lane) (bool, error) {
	if !lane.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownLane, lane)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.removeLocked(lane, id); !ok {
		s.logger.Debug("delete skipped, task not in lane", "task", id, "lane", lane)
		return false, nil
	}

	err := s.saveLocked(ctx)
	s.notify(Change{Kind: ChangeDeleted, TaskID: id, From: lane})
	return true, err
}

// Move removes the task from one lane and appends it to the tail of another.
// Moving within the same lane, or a task that isn't in from, is a no-op.
func (s *Store) Move(ctx context.Context, id types.TaskID, from, to models.Lane) (bool, error) {
	if !from.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownLane, from)
	}
	if !to.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownLane, to)
	}
	if from == to {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.removeLocked(from, id)
	if !ok {
		s.logger.Debug("move skipped, task not in lane", "task", id, "lane", from)
		return false, nil
	}
	s.board[to] = append(s.board[to], task)

	err := s.saveLocked(ctx)
	s.notify(Change{Kind: ChangeMoved, TaskID: id, From: from, To: to})
	return true, err
}

// MoveToNext moves the task one lane to the right of where it is now
func (s *Store) MoveToNext(ctx context.Context, id types.TaskID) (models.Lane, error) {
	return s.shift(ctx, id, models.Lane.Next, models.ErrNoNextLane)
}

// MoveToPrev moves the task one lane to the left of where it is now
func (s *Store) MoveToPrev(ctx context.Context, id types.TaskID) (models.Lane, error) {
	return s.shift(ctx, id, models.Lane.Prev, models.ErrNoPrevLane)
}

func (s *Store) shift(ctx context.Context, id types.TaskID, step func(models.Lane) (models.Lane, bool), edgeErr error) (models.Lane, error) {
	loc, ok := s.Find(id)
	if !ok {
		return "", ErrTaskNotFound
	}
	to, ok := step(loc.Lane)
	if !ok {
		return loc.Lane, edgeErr
	}
	moved, err := s.Move(ctx, id, loc.Lane, to)
	if err != nil {
		return to, err
	}
	if !moved {
		// Lost a race with another writer
		return loc.Lane, ErrTaskNotFound
	}
	return to, nil
}

// Snapshot returns a deep copy of the current board
func (s *Store) Snapshot() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Tasks returns a copy of one lane's sequence
func (s *Store) Tasks(lane models.Lane) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task{}, s.board[lane]...)
}

// Find locates a task by identity in any lane
func (s *Store) Find(id types.TaskID) (models.TaskLocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Find(id)
}

// Counts returns the number of tasks per lane
func (s *Store) Counts() map[models.Lane]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.Lane]int, len(models.Lanes()))
	for _, lane := range models.Lanes() {
		counts[lane] = len(s.board[lane])
	}
	return counts
}

func (s *Store) removeLocked(lane models.Lane, id types.TaskID) (models.Task, bool) {
	i := s.board.IndexOf(lane, id)
	if i < 0 {
		return models.Task{}, false
	}
	task := s.board[lane][i]
	s.board[lane] = slices.Delete(s.board[lane], i, i+1)
	return task, true
}

// saveLocked persists the board; the in-memory change stands even on failure
func (s *Store) saveLocked(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.board.Clone()); err != nil {
		s.logger.Error("failed to save board", "error", err)
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// cleanText trims s and replaces invalid UTF-8 the way the JSON encoder
// would, so the in-memory text matches what is persisted
func cleanText(s string) string {
	return strings.ToValidUTF8(strings.TrimSpace(s), "\uFFFD")
}

// normalize makes sure all three lanes exist as non-nil slices
func normalize(b models.Board) models.Board {
	out := models.NewBoard()
	for _, lane := range models.Lanes() {
		if len(b[lane]) > 0 {
			out[lane] = b[lane]
		}
	}
	return out
}
