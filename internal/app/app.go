// Package app wires storage, the board store and the event bus together.
package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Key-value slots backing the board and preferences
	kv database.KeyValueStore

	// Event bus for live updates inside the process
	Bus *events.Bus

	// Board store (business logic)
	Board *board.Store

	// UI preferences stored next to the board
	Preferences *database.Preferences

	// How the board was restored at startup
	LoadStatus board.LoadStatus
}

// New creates an App over kv and restores the persisted board.
// The App takes ownership of kv and closes it in Close.
func New(ctx context.Context, kv database.KeyValueStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	bus := cfg.bus
	if bus == nil {
		bus = events.NewBus(events.DefaultBufferSize)
	}

	storeOpts := []board.Option{board.WithObserver(bus.Observer())}
	if cfg.logger != nil {
		storeOpts = append(storeOpts, board.WithLogger(cfg.logger))
	}
	storeOpts = append(storeOpts, cfg.storeOpts...)

	a := &App{
		kv:          kv,
		Bus:         bus,
		Board:       board.NewStore(database.NewBoardPersister(kv), storeOpts...),
		Preferences: database.NewPreferences(kv),
	}
	a.LoadStatus = a.Board.Load(ctx)
	return a
}

// Open builds the storage backend selected in cfg and returns a ready App
func Open(ctx context.Context, cfg config.StorageConfig, opts ...Option) (*App, error) {
	kv, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Driver, err)
	}
	return New(ctx, kv, opts...), nil
}

// Store returns the underlying key-value store
func (a *App) Store() database.KeyValueStore {
	return a.kv
}

// Close stops event delivery and releases the storage backend
func (a *App) Close() error {
	a.Bus.Close()
	if a.kv == nil {
		return nil
	}
	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
