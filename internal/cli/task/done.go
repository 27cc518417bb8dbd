package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Move a task to the done lane",
		Long: `Move a task to the done lane from wherever it is.

Examples:
  lanes task done 3f2a...
  lanes task done 3f2a... --json
`,
		Args: cli.ExactArgs(1),
		RunE: runDone,
	}

	addOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		return moveTo(cmd, c, f, types.TaskID(args[0]), "", models.LaneDone)
	})
}

// StartCmd returns the task start subcommand
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <task_id>",
		Short: "Move a task to the in-progress lane",
		Args:  cli.ExactArgs(1),
		RunE:  runStart,
	}

	addOutputFlags(cmd)

	return cmd
}

func runStart(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		return moveTo(cmd, c, f, types.TaskID(args[0]), "", models.LaneInProgress)
	})
}
