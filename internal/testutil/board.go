// Package testutil holds helpers shared by tests across packages
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
)

// SetupTestApp returns an App over a fresh in-memory store.
// The store is returned too so tests can inspect or corrupt what was saved.
func SetupTestApp(t *testing.T) (*database.MemoryStore, *app.App) {
	t.Helper()
	kv := database.NewMemoryStore()
	a := app.New(context.Background(), kv)
	t.Cleanup(func() { _ = a.Close() })
	return kv, a
}

// SetupCorruptApp returns an App whose stored board couldn't be decoded
func SetupCorruptApp(t *testing.T) (*database.MemoryStore, *app.App) {
	t.Helper()
	kv := database.NewMemoryStore()
	if err := kv.Set(context.Background(), models.BoardKey, []byte(`{{{not json`)); err != nil {
		t.Fatalf("Failed to seed corrupt board: %v", err)
	}
	a := app.New(context.Background(), kv)
	t.Cleanup(func() { _ = a.Close() })
	return kv, a
}

// CreateTestTask adds a task through the board store and returns it
func CreateTestTask(t *testing.T, a *app.App, lane models.Lane, title string) *models.Task {
	t.Helper()
	task, err := a.Board.Create(context.Background(), lane, title, "")
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
