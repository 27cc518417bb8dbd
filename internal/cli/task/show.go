package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/types"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a task",
		Long:  "Show one task with its lane, creation time and rendered description.",
		Args:  cli.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, false, func(c *cli.CLI, f *cli.OutputFormatter) error {
		loc, err := locate(cmd, c, types.TaskID(args[0]), "")
		if err != nil {
			return err
		}

		view := newTaskView(loc.Lane, loc.Task)
		if f.Quiet || f.JSON {
			return f.Success(view)
		}

		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(view.Title))
		b.WriteString("  ")
		b.WriteString(styles.RenderLaneChip(loc.Lane))
		b.WriteString("\n\n")
		b.WriteString(styles.LabelStyle.Render("ID: "))
		b.WriteString(styles.ValueStyle.Render(view.ID))
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Created: "))
		b.WriteString(styles.ValueStyle.Render(view.CreatedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString("\n")
		b.WriteString(styles.SectionStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(components.RenderDescription(components.DescriptionProps{
			Description: view.Description,
			Width:       styles.CardWidth - 6,
		}))

		fmt.Println(styles.RenderCard(b.String()))
		return nil
	})
}
