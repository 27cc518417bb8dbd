package task

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/types"
)

// taskView is the JSON shape of a task in command output
type taskView struct {
	ID          string      `json:"id"`
	Lane        models.Lane `json:"lane"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (v taskView) GetID() string {
	return v.ID
}

func newTaskView(lane models.Lane, t models.Task) taskView {
	return taskView{
		ID:          t.ID.String(),
		Lane:        lane,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// addOutputFlags registers the agent-friendly flags every subcommand takes
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// withCLI opens the application, runs fn and reports any error it returns.
// Mutating commands refuse to run over an unreadable stored board.
func withCLI(cmd *cobra.Command, mutates bool, fn func(c *cli.CLI, f *cli.OutputFormatter) error) error {
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if cliInstance.App.LoadStatus == board.LoadedDefaultCorrupt {
		if mutates {
			if err := cliInstance.EnsureWritable(); err != nil {
				return cli.HandleError(formatter, err)
			}
		} else {
			formatter.Warn("stored board could not be read; showing an empty board")
		}
	}

	if err := fn(cliInstance, formatter); err != nil {
		return cli.HandleError(formatter, err)
	}
	return nil
}

// locate finds the task by id. When laneFlag was given the task must be in
// that lane.
func locate(cmd *cobra.Command, c *cli.CLI, id types.TaskID, laneFlag string) (models.TaskLocation, error) {
	loc, ok := c.App.Board.Find(id)
	if !ok {
		return models.TaskLocation{}, fmt.Errorf("%w: %s", board.ErrTaskNotFound, id)
	}
	if laneFlag == "" || !cmd.Flags().Changed(laneFlag) {
		return loc, nil
	}
	lane, err := cli.LaneFlag(cmd, laneFlag)
	if err != nil {
		return models.TaskLocation{}, err
	}
	if loc.Lane != lane {
		return models.TaskLocation{}, fmt.Errorf("%w: %s is in %s, not %s", board.ErrTaskNotFound, id, loc.Lane, lane)
	}
	return loc, nil
}
