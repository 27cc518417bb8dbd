package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// LaneProps describes one lane to draw
type LaneProps struct {
	Lane     models.Lane
	Tasks    []models.Task
	Selected bool // lane has the cursor
	// SelectedTask is the cursor row, only meaningful when Selected
	SelectedTask int
	// DropTarget marks the lane a grabbed task would land in
	DropTarget bool
	// Grabbed is the id of the task being carried, if any
	Grabbed string
	Width   int
	Height  int // total box height, 0 for auto
}

// RenderLane renders a complete lane with its title and tasks
//
// Layout:
//
//	{Lane Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderLane(p LaneProps) string {
	width := max(p.Width, MinLaneWidth)
	cardWidth := width - laneBorderOverhead

	header := fmt.Sprintf("%s (%d)", p.Lane.Title(), len(p.Tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(p.Tasks) == 0 {
		content += "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render(models.EmptyLanePlaceholder)
	} else {
		visible := len(p.Tasks)
		if p.Height > 0 {
			visible = max((p.Height-laneChromeLines)/TaskCardHeight, 1)
		}
		offset := scrollOffset(p.SelectedTask, visible, len(p.Tasks), p.Selected)
		end := min(offset+visible, len(p.Tasks))

		if offset > 0 {
			content += SubtleStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			task := p.Tasks[i]
			selected := p.Selected && i == p.SelectedTask
			grabbed := p.Grabbed != "" && task.ID.String() == p.Grabbed
			cards = append(cards, RenderTask(task, cardWidth, selected, grabbed))
		}
		content += strings.Join(cards, "\n")

		if end < len(p.Tasks) {
			content += "\n" + SubtleStyle.Render("▼ more below")
		}
	}

	style := LaneStyle.Width(width)
	switch {
	case p.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case p.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(content)
}

// scrollOffset keeps the cursor row inside the visible window
func scrollOffset(cursor, visible, total int, selected bool) int {
	if !selected || cursor < visible {
		return 0
	}
	return min(cursor-visible+1, max(total-visible, 0))
}
