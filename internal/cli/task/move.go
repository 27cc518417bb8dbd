package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/types"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task_id>",
		Short: "Move a task to another lane",
		Long: `Move a task to the end of another lane. Moving a task to the lane it is
already in succeeds without changing anything.

Examples:
  lanes task move 3f2a... --to=done
  lanes task move 3f2a... --from=todo --to=in-progress --json
`,
		Args: cli.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("from", "", "Lane the task is expected to be in")
	cmd.Flags().String("to", "", "Destination lane (required)")
	addOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	if err := cli.RequireFlags(cmd, "to"); err != nil {
		return cli.HandleError(formatterFor(cmd), err)
	}

	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		to, err := cli.LaneFlag(cmd, "to")
		if err != nil {
			return err
		}
		return moveTo(cmd, c, f, types.TaskID(args[0]), "from", to)
	})
}

// moveTo moves the task to lane and prints the outcome. A task already in
// lane is reported on stderr and still succeeds.
func moveTo(cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter, id types.TaskID, fromFlag string, to models.Lane) error {
	loc, err := locate(cmd, c, id, fromFlag)
	if err != nil {
		return err
	}

	moved := false
	if loc.Lane == to {
		if !f.JSON {
			f.Warn(fmt.Sprintf("Task %s is already in %s", id, to.Title()))
		}
	} else {
		res, err := events.Apply(cmd.Context(), c.App.Board, events.MoveIntent{TaskID: id, From: loc.Lane, To: to})
		if err != nil {
			return err
		}
		if !res.Changed {
			return fmt.Errorf("%w: %s", board.ErrTaskNotFound, id)
		}
		moved = true
	}

	if f.Quiet {
		fmt.Println(id)
		return nil
	}
	if f.JSON {
		return f.JSONSuccess(map[string]any{
			"task_id":   id,
			"from_lane": loc.Lane,
			"to_lane":   to,
			"moved":     moved,
		})
	}
	if moved {
		fmt.Printf("Task %s moved to '%s'\n", id, to.Title())
	}
	return nil
}
