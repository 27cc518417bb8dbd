package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks in every lane, or in one lane with --lane.

Tasks are printed in board order, oldest first within a lane.`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().String("lane", "", "Only list this lane: todo, in-progress, done")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, false, func(c *cli.CLI, f *cli.OutputFormatter) error {
		lanes := models.Lanes()
		if cmd.Flags().Changed("lane") {
			lane, err := cli.LaneFlag(cmd, "lane")
			if err != nil {
				return err
			}
			lanes = []models.Lane{lane}
		}

		byLane := make(map[models.Lane][]taskView, len(lanes))
		total := 0
		for _, lane := range lanes {
			tasks := c.App.Board.Tasks(lane)
			views := make([]taskView, 0, len(tasks))
			for _, t := range tasks {
				views = append(views, newTaskView(lane, t))
			}
			byLane[lane] = views
			total += len(views)
		}

		if f.Quiet {
			for _, lane := range lanes {
				for _, v := range byLane[lane] {
					fmt.Println(v.ID)
				}
			}
			return nil
		}

		if f.JSON {
			return f.JSONSuccess(byLane)
		}

		if total == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		for i, lane := range lanes {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(styles.RenderLaneHeader(lane, len(byLane[lane])))
			for _, v := range byLane[lane] {
				fmt.Printf("  [%s] %s\n", v.ID, v.Title)
			}
		}
		return nil
	})
}
