package database

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a slot has never been written
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a durable set of named slots.
// Each Set fully overwrites the previous value; the last writer wins.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the underlying connection or handle
	Close() error
}
