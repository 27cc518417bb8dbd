package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/types"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --quiet or --json).",
		Args:  cli.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cmd.Flags().String("lane", "", "Lane the task is expected to be in")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		id := types.TaskID(args[0])
		loc, err := locate(cmd, c, id, "lane")
		if err != nil {
			return err
		}

		// Ask for confirmation unless force or a machine-readable mode
		if !force && !f.Quiet && !f.JSON {
			fmt.Printf("Delete task %s: '%s'? (y/N): ", id, loc.Task.Title)
			var response string
			if _, err := fmt.Scanln(&response); err != nil {
				slog.Debug("no confirmation input", "error", err)
			}
			if response = strings.ToLower(response); response != "y" && response != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		res, err := events.Apply(cmd.Context(), c.App.Board, events.DeleteIntent{TaskID: id, Lane: loc.Lane})
		if err != nil {
			return err
		}
		if !res.Changed {
			return fmt.Errorf("%w: %s", board.ErrTaskNotFound, id)
		}

		if f.Quiet {
			fmt.Println(id)
			return nil
		}
		if f.JSON {
			return f.JSONSuccess(map[string]any{"task_id": id, "lane": loc.Lane, "deleted": true})
		}
		fmt.Printf("Deleted task %s from %s\n", id, loc.Lane.Title())
		return nil
	})
}
