package board

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithObserver registers fn to be told about every change
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the identity token source
func WithIDGenerator(newID func() types.TaskID) Option {
	return func(s *Store) {
		s.newID = newID
	}
}
