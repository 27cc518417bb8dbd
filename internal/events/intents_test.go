package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
)

func setupStore(t *testing.T) *board.Store {
	t.Helper()
	s := board.NewStore(database.NewBoardPersister(database.NewMemoryStore()))
	s.Load(context.Background())
	return s
}

type bogusIntent struct{}

func (bogusIntent) intent() {}

func TestApply_Create(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	res, err := Apply(ctx, s, CreateIntent{Lane: models.LaneTodo, Title: "Buy milk", Description: "2l"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.NotNil(t, res.Task)
	assert.Equal(t, "Buy milk", res.Task.Title)
	assert.Len(t, s.Tasks(models.LaneTodo), 1)
}

func TestApply_CreateEmptyTitle(t *testing.T) {
	res, err := Apply(context.Background(), setupStore(t), CreateIntent{Lane: models.LaneTodo, Title: "  "})
	assert.ErrorIs(t, err, board.ErrEmptyTitle)
	assert.False(t, res.Changed)
	assert.Nil(t, res.Task)
}

func TestApply_UpdateDeleteMove(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	res, err := Apply(ctx, s, CreateIntent{Lane: models.LaneTodo, Title: "A"})
	require.NoError(t, err)
	id := res.Task.ID

	res, err = Apply(ctx, s, UpdateIntent{TaskID: id, Lane: models.LaneTodo, Title: "A2"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "A2", s.Tasks(models.LaneTodo)[0].Title)

	// Same-lane drop resolves to a no-op
	res, err = Apply(ctx, s, MoveIntent{TaskID: id, From: models.LaneTodo, To: models.LaneTodo})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = Apply(ctx, s, MoveIntent{TaskID: id, From: models.LaneTodo, To: models.LaneInProgress})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Empty(t, s.Tasks(models.LaneTodo))
	assert.Len(t, s.Tasks(models.LaneInProgress), 1)

	// Stale lane is a silent no-op
	res, err = Apply(ctx, s, DeleteIntent{TaskID: id, Lane: models.LaneTodo})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = Apply(ctx, s, DeleteIntent{TaskID: id, Lane: models.LaneInProgress})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Zero(t, s.Snapshot().Len())
}

func TestApply_UnknownIntent(t *testing.T) {
	_, err := Apply(context.Background(), setupStore(t), bogusIntent{})
	assert.True(t, errors.Is(err, ErrUnknownIntent))
}
