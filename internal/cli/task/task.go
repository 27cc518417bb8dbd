// Package task implements the "lanes task" subcommands
package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command with all subcommands
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on the board",
		Long: `Create, list, edit, move and delete tasks without opening the board.

Every subcommand accepts --json for agents and --quiet for scripts.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(StartCmd())

	return cmd
}
