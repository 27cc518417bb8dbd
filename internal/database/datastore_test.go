package database

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/config"
)

func TestKeyValueStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, kv := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set(ctx, "slot", []byte("first")))
			got, err := kv.Get(ctx, "slot")
			require.NoError(t, err)
			assert.Equal(t, []byte("first"), got)

			// Set overwrites; last writer wins
			require.NoError(t, kv.Set(ctx, "slot", []byte("second")))
			got, err = kv.Get(ctx, "slot")
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), got)

			// Slots are independent
			require.NoError(t, kv.Set(ctx, "other", []byte("x")))
			got, err = kv.Get(ctx, "slot")
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), got)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, _ := kv.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "lanes.db")

	s, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "slot", []byte(`{"todo":[]}`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, `{"todo":[]}`, string(got))

	// Upsert keeps a single row per key
	require.NoError(t, s.Set(ctx, "slot", []byte("{}")))
	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM slots").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestFileStore_EscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "../escape", []byte("x")))

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1, "slot file must stay inside the store directory")

	got, err := s.Get(ctx, "../escape")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := setupFileStore(t)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisStore_Prefix(t *testing.T) {
	ctx := context.Background()
	s, mr := setupRedisStore(t, "team-a:")

	require.NoError(t, s.Set(ctx, "kanban-board-data", []byte("{}")))

	got, err := mr.Get("team-a:kanban-board-data")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
	assert.False(t, mr.Exists("kanban-board-data"))

	// No TTL on the slot
	assert.Zero(t, mr.TTL("team-a:kanban-board-data"))
}

func TestRedisStore_ConnectFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisStore(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, kv)
	})

	t.Run("file", func(t *testing.T) {
		kv, err := Open(ctx, config.StorageConfig{Driver: config.DriverFile, Path: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, kv)
	})

	t.Run("sqlite", func(t *testing.T) {
		kv, err := Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "x.db")})
		require.NoError(t, err)
		defer func() { _ = kv.Close() }()
		assert.IsType(t, &SQLiteStore{}, kv)
	})

	t.Run("redis", func(t *testing.T) {
		_, mr := setupRedisStore(t, "")
		kv, err := Open(ctx, config.StorageConfig{
			Driver: config.DriverRedis,
			Redis:  config.RedisConfig{Addr: mr.Addr()},
		})
		require.NoError(t, err)
		defer func() { _ = kv.Close() }()
		assert.IsType(t, &RedisStore{}, kv)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(ctx, config.StorageConfig{Driver: "postgres"})
		assert.Error(t, err)
	})
}
