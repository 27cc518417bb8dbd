package database

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/lanes/internal/models"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

// setupSQLiteStore creates an in-memory database with migrations applied
func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), memoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// setupRedisStore starts a miniredis server and wraps a client for it
func setupRedisStore(t *testing.T, prefix string) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStoreFromClient(client, prefix)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

// setupFileStore roots a file store in a temp directory
func setupFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return s
}

// allStores returns one instance of every backend, keyed by driver name
func allStores(t *testing.T) map[string]KeyValueStore {
	t.Helper()
	redisStore, _ := setupRedisStore(t, "test:")
	return map[string]KeyValueStore{
		"sqlite": setupSQLiteStore(t),
		"file":   setupFileStore(t),
		"redis":  redisStore,
		"memory": NewMemoryStore(),
	}
}

// sampleBoard returns a board with tasks in every lane
func sampleBoard() models.Board {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	b := models.NewBoard()
	b[models.LaneTodo] = []models.Task{
		{ID: "t-1", Title: "Buy milk", CreatedAt: created},
		{ID: "t-2", Title: "Call plumber", Description: "kitchen sink", CreatedAt: created.Add(time.Minute)},
	}
	b[models.LaneInProgress] = []models.Task{
		{ID: "t-3", Title: "Write report", Description: "## Q1\n- revenue", CreatedAt: created.Add(time.Hour)},
	}
	b[models.LaneDone] = []models.Task{
		{ID: "t-4", Title: "Pay rent", CreatedAt: created.Add(2 * time.Hour)},
	}
	return b
}
