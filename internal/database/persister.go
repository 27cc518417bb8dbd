package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

var (
	// ErrBoardNotFound means the board slot has never been written
	ErrBoardNotFound = fmt.Errorf("%w: %w", models.ErrNoSavedBoard, ErrKeyNotFound)

	// ErrCorruptBoard means the board slot holds data that can't be decoded
	// into a valid board
	ErrCorruptBoard = errors.New("corrupt board data")
)

// boardDocument is the persisted layout. The lane keys and task fields
// match the browser local-storage format so existing exports load as-is.
type boardDocument struct {
	Todo       []taskDocument `json:"todo"`
	InProgress []taskDocument `json:"inProgress"`
	Done       []taskDocument `json:"done"`
}

type taskDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BoardPersister stores the whole board as one JSON document in a slot
type BoardPersister struct {
	kv  KeyValueStore
	key string
}

// NewBoardPersister persists under models.BoardKey
func NewBoardPersister(kv KeyValueStore) *BoardPersister {
	return &BoardPersister{kv: kv, key: models.BoardKey}
}

// Load reads and decodes the board.
// Returns ErrBoardNotFound for an empty slot and ErrCorruptBoard for bad data.
func (p *BoardPersister) Load(ctx context.Context) (models.Board, error) {
	data, err := p.kv.Get(ctx, p.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return DecodeBoard(data)
}

// Save encodes the board and overwrites the slot
func (p *BoardPersister) Save(ctx context.Context, board models.Board) error {
	data, err := EncodeBoard(board)
	if err != nil {
		return err
	}
	return p.kv.Set(ctx, p.key, data)
}

// EncodeBoard serializes a board into the persisted layout
func EncodeBoard(board models.Board) ([]byte, error) {
	doc := boardDocument{
		Todo:       toDocuments(board[models.LaneTodo]),
		InProgress: toDocuments(board[models.LaneInProgress]),
		Done:       toDocuments(board[models.LaneDone]),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// DecodeBoard parses the persisted layout.
// The top level must be an object; unknown keys are ignored and missing
// lanes come back empty. Empty or repeated task ids make the data corrupt.
func DecodeBoard(data []byte) (models.Board, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: top level is null", ErrCorruptBoard)
	}

	var doc boardDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}

	board := models.NewBoard()
	board[models.LaneTodo] = fromDocuments(doc.Todo)
	board[models.LaneInProgress] = fromDocuments(doc.InProgress)
	board[models.LaneDone] = fromDocuments(doc.Done)

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}
	return board, nil
}

func toDocuments(tasks []models.Task) []taskDocument {
	docs := make([]taskDocument, 0, len(tasks))
	for _, t := range tasks {
		docs = append(docs, taskDocument{
			ID:          t.ID.String(),
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.UTC(),
		})
	}
	return docs
}

func fromDocuments(docs []taskDocument) []models.Task {
	tasks := make([]models.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, models.Task{
			ID:          types.TaskID(d.ID),
			Title:       d.Title,
			Description: d.Description,
			CreatedAt:   d.CreatedAt,
		})
	}
	return tasks
}

// Preferences stores small UI settings next to the board
type Preferences struct {
	kv KeyValueStore
}

// NewPreferences wraps kv
func NewPreferences(kv KeyValueStore) *Preferences {
	return &Preferences{kv: kv}
}

// DarkMode reports the saved preference; an unset or unreadable value is false
func (p *Preferences) DarkMode(ctx context.Context) (bool, error) {
	data, err := p.kv.Get(ctx, models.DarkModeKey)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	dark, err := strconv.ParseBool(string(data))
	if err != nil {
		return false, nil
	}
	return dark, nil
}

// SetDarkMode saves the preference as "true" or "false"
func (p *Preferences) SetDarkMode(ctx context.Context, dark bool) error {
	return p.kv.Set(ctx, models.DarkModeKey, []byte(strconv.FormatBool(dark)))
}
