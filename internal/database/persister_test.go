package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/models"
)

func TestBoardPersister_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, kv := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			p := NewBoardPersister(kv)
			want := sampleBoard()

			require.NoError(t, p.Save(ctx, want))
			got, err := p.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestBoardPersister_EmptySlot(t *testing.T) {
	p := NewBoardPersister(NewMemoryStore())

	_, err := p.Load(context.Background())
	assert.ErrorIs(t, err, ErrBoardNotFound)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoardPersister_UsesFixedKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	require.NoError(t, NewBoardPersister(kv).Save(ctx, models.NewBoard()))

	data, err := kv.Get(ctx, models.BoardKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"todo":[],"inProgress":[],"done":[]}`, string(data))
}

func TestEncodeBoard_Layout(t *testing.T) {
	data, err := EncodeBoard(sampleBoard())
	require.NoError(t, err)

	s := string(data)
	for _, key := range []string{`"todo"`, `"inProgress"`, `"done"`, `"id":"t-1"`, `"createdAt":"2024-03-01T09:30:00Z"`} {
		assert.Contains(t, s, key)
	}
	// Todo order is preserved
	assert.Less(t, strings.Index(s, "t-1"), strings.Index(s, "t-2"))
}

func TestDecodeBoard_BrowserExport(t *testing.T) {
	// Exactly what the browser version writes to local storage
	data := `{
		"todo": [{"id":"task-1700000000000-abc123def","title":"Buy milk","description":"","createdAt":"2023-11-14T22:13:20.000Z"}],
		"inProgress": [],
		"done": [{"id":"task-1700000000001-xyz","title":"Ship it","description":"v1","createdAt":"2023-11-14T22:13:21.000Z"}]
	}`

	board, err := DecodeBoard([]byte(data))
	require.NoError(t, err)

	require.Len(t, board[models.LaneTodo], 1)
	assert.Equal(t, "Buy milk", board[models.LaneTodo][0].Title)
	assert.Equal(t, 2023, board[models.LaneTodo][0].CreatedAt.Year())
	assert.Empty(t, board[models.LaneInProgress])
	require.Len(t, board[models.LaneDone], 1)
	assert.Equal(t, "v1", board[models.LaneDone][0].Description)
}

func TestDecodeBoard_MissingLanesDefaultEmpty(t *testing.T) {
	board, err := DecodeBoard([]byte(`{"todo":[{"id":"a","title":"A"}],"archived":[1,2]}`))
	require.NoError(t, err)

	assert.Len(t, board[models.LaneTodo], 1)
	assert.NotNil(t, board[models.LaneInProgress])
	assert.Empty(t, board[models.LaneInProgress])
	assert.Empty(t, board[models.LaneDone])
}

func TestDecodeBoard_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{not json`},
		{"empty", ``},
		{"null", `null`},
		{"array", `[]`},
		{"string", `"board"`},
		{"lane not a list", `{"todo":"x"}`},
		{"task not an object", `{"todo":[42]}`},
		{"bad timestamp", `{"todo":[{"id":"a","title":"A","createdAt":"yesterday"}]}`},
		{"empty id", `{"todo":[{"id":"","title":"A"}]}`},
		{"duplicate id", `{"todo":[{"id":"a","title":"A"}],"done":[{"id":"a","title":"A"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBoard([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptBoard)
		})
	}
}

func TestPreferences_DarkMode(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	prefs := NewPreferences(kv)

	dark, err := prefs.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark, "unset preference defaults to light")

	require.NoError(t, prefs.SetDarkMode(ctx, true))
	dark, err = prefs.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)

	raw, _ := kv.Get(ctx, models.DarkModeKey)
	assert.Equal(t, "true", string(raw))

	// Garbage falls back to light without an error
	require.NoError(t, kv.Set(ctx, models.DarkModeKey, []byte("maybe")))
	dark, err = prefs.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)
}
