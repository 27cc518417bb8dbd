package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//	┌──────────────────────┐
//	│ {Task Title}         │
//	│ first line of desc   │
//	└──────────────────────┘
//
// The card width is fixed; long text is truncated with an ellipsis.
func RenderTask(task models.Task, width int, selected, grabbed bool) string {
	inner := max(width-taskBorderOverhead, 1)

	title := lipgloss.NewStyle().Bold(true).Render(truncate(task.Title, inner))

	preview := firstLine(task.Description)
	previewStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if preview == "" {
		previewStyle = previewStyle.Italic(true)
		preview = "no description"
	}
	content := title + "\n" + previewStyle.Render(truncate(preview, inner))

	style := TaskStyle.Width(width)
	switch {
	case grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case selected:
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(content)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// truncate shortens s to at most n display cells
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
