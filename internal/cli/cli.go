// Package cli holds the shared plumbing behind the lanes subcommands:
// opening the application, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/logging"
	"github.com/thenoetrevino/lanes/internal/services/board"
)

// Options are the global flags shared by every subcommand
type Options struct {
	ConfigPath string // --config
	Storage    string // --storage driver override
	Ephemeral  bool   // --ephemeral keeps the board in memory only
	// OverwriteCorrupt lets mutating commands replace an unreadable board
	OverwriteCorrupt bool
}

type contextKey string

const (
	appKey     contextKey = "app"
	optionsKey contextKey = "options"
)

// WithApp injects an already opened App; commands then skip opening storage.
// Tests use this to run commands against an in-memory board.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithOptions stores the parsed global flags in ctx
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// OptionsFromContext returns the global flags stored by WithOptions
func OptionsFromContext(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey).(Options)
	return opts
}

// CLI represents the CLI application context
type CLI struct {
	App     *app.App // Application container with services
	Config  *config.Config
	Options Options

	owned     bool // App was opened here and must be closed here
	logCloser io.Closer
}

// GetCLIFromContext returns the injected App when present, otherwise opens
// one from the configuration named by the global flags.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	opts := OptionsFromContext(ctx)
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default(), Options: opts}, nil
	}
	return NewCLI(ctx, opts)
}

// NewCLI loads configuration, starts file logging and opens storage
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; commands still work without a log file
		fmt.Fprintf(os.Stderr, "warning: could not open log file: %v\n", err)
		logging.Setup(io.Discard, cfg.Log.Level)
	}

	application, err := app.Open(ctx, cfg.Storage, app.WithLogger(logging.Logger))
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	slog.Debug("cli opened board", "driver", cfg.Storage.Driver, "status", application.LoadStatus)

	return &CLI{
		App:       application,
		Config:    cfg,
		Options:   opts,
		owned:     true,
		logCloser: closer,
	}, nil
}

// LoadConfig reads the config file and applies the flag overrides
func LoadConfig(opts Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Storage != "" {
		cfg.SetDriver(opts.Storage)
	}
	if opts.Ephemeral {
		cfg.SetDriver(config.DriverMemory)
	}
	if err := cfg.Validate(); err != nil {
		return nil, WithExitCode(ExitUsage, err)
	}
	return cfg, nil
}

// EnsureWritable refuses to mutate a board that replaced unreadable data,
// since saving would overwrite what is still on disk.
func (c *CLI) EnsureWritable() error {
	if c.App.LoadStatus == board.LoadedDefaultCorrupt && !c.Options.OverwriteCorrupt {
		return ErrCorruptStorage
	}
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
	return err
}
