// Package launcher runs the interactive board until it exits or the process
// is asked to stop.
package launcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/tui"
)

// ShutdownGrace is how long the board gets to restore the terminal after
// a signal before storage is closed underneath it
const ShutdownGrace = 2 * time.Second

// runBoard is swapped out in tests so no terminal is needed
var runBoard = tui.Run

// Launch starts the TUI application
func Launch(ctx context.Context, a *app.App, cfg *config.Config) error {
	slog.Info("starting board", "status", a.LoadStatus)

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		errChan <- runBoard(ctx, a, cfg)
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if ctx.Err() != nil {
			// Stopped by the signal, not by a failure
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
	}

	select {
	case <-errChan:
	case <-time.After(ShutdownGrace):
		slog.Warn("board did not stop within grace period")
	}
	return nil
}
