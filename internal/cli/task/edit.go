package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/types"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id>",
		Short: "Edit a task's title or description",
		Long: `Replace the title and/or description of a task. Fields that aren't
passed keep their current value.

Examples:
  lanes task edit 3f2a... --title="Fix the other bug"
  lanes task edit 3f2a... --lane=todo --description=-
`,
		Args: cli.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description (use - for stdin)")
	cmd.Flags().String("lane", "", "Lane the task is expected to be in")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("description") {
		return cli.HandleError(formatterFor(cmd),
			cli.WithExitCode(cli.ExitUsage, fmt.Errorf("nothing to edit: pass --title and/or --description")))
	}

	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		id := types.TaskID(args[0])
		loc, err := locate(cmd, c, id, "lane")
		if err != nil {
			return err
		}

		title, description := loc.Task.Title, loc.Task.Description
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			raw, _ := cmd.Flags().GetString("description")
			if description, err = cli.ReadDescription(raw); err != nil {
				return err
			}
		}

		res, err := events.Apply(cmd.Context(), c.App.Board, events.UpdateIntent{
			TaskID:      id,
			Lane:        loc.Lane,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return err
		}
		if !res.Changed {
			return fmt.Errorf("%w: %s", board.ErrTaskNotFound, id)
		}

		updated, _ := c.App.Board.Find(id)
		view := newTaskView(updated.Lane, updated.Task)
		if f.Quiet || f.JSON {
			return f.Success(view)
		}
		fmt.Printf("Updated task %s in %s\n", view.ID, view.Lane.Title())
		return nil
	})
}
