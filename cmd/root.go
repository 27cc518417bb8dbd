// Package cmd wires the lanes command tree
package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/task"
	"github.com/thenoetrevino/lanes/internal/launcher"
)

// NewRootCmd builds the lanes command with all subcommands
func NewRootCmd() *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lanes - a three-lane kanban board for the terminal",
		Long: `Lanes keeps your tasks in three lanes: todo, in-progress and done.

Run without arguments to open the board, or use 'lanes task' to script it.`,
		Args:          cli.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(cli.WithOptions(cmd.Context(), opts))
			return nil
		},
		RunE: runBoard,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lanes/config.yaml)")
	flags.StringVar(&opts.Storage, "storage", "", "Storage driver override: sqlite, file, redis, memory")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "Keep the board in memory only")
	flags.BoolVar(&opts.OverwriteCorrupt, "overwrite-corrupt", false, "Allow changes when the stored board can't be read")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())

	return rootCmd
}

// runBoard opens the interactive board
func runBoard(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return launcher.Launch(cmd.Context(), cliInstance.App, cliInstance.Config)
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
