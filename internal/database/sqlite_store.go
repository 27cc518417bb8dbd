package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore keeps slots in the sqlite "slots" table
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time verification that *SQLiteStore implements KeyValueStore
var _ KeyValueStore = (*SQLiteStore)(nil)

// NewSQLiteStore wraps an initialized database (see InitDB)
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens the database at path and wraps it
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests and diagnostics
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
