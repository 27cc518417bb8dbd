package app

import (
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/services/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus       *events.Bus
	logger    *slog.Logger
	storeOpts []board.Option
}

// WithBus sets the event bus for the application
func WithBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStoreOptions passes extra options through to the board store
func WithStoreOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOpts = append(cfg.storeOpts, opts...)
	}
}
