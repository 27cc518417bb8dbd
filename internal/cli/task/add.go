package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a lane",
		Long: `Add a new task to the end of a lane (todo by default).

Examples:
  # Simple task
  lanes task add --title="Fix bug"

  # Straight into progress, description from stdin
  echo "details" | lanes task add --title="Write docs" --lane=in-progress --description=-

  # Quiet mode for bash capture
  TASK_ID=$(lanes task add --title="Fix bug" --quiet)
`,
		Args: cli.ExactArgs(0),
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("lane", string(models.LaneTodo), "Lane: todo, in-progress, done")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := cli.RequireFlags(cmd, "title"); err != nil {
		return cli.HandleError(formatterFor(cmd), err)
	}

	return withCLI(cmd, true, func(c *cli.CLI, f *cli.OutputFormatter) error {
		lane, err := cli.LaneFlag(cmd, "lane")
		if err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		rawDescription, _ := cmd.Flags().GetString("description")
		description, err := cli.ReadDescription(rawDescription)
		if err != nil {
			return err
		}

		res, err := events.Apply(cmd.Context(), c.App.Board, events.CreateIntent{
			Lane:        lane,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return err
		}

		view := newTaskView(lane, *res.Task)
		if f.Quiet || f.JSON {
			return f.Success(view)
		}
		fmt.Printf("Created task %s in %s\n", view.ID, lane.Title())
		return nil
	})
}
