package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width   int
	Left    string // mode hint or notification, already styled
	Summary string // e.g. "3 tasks"
	Dark    bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: notification or mode hint
// Right side: task summary, theme and "? for help"
func RenderStatusBar(props StatusBarProps) string {
	mode := "light"
	if props.Dark {
		mode = "dark"
	}
	right := SubtleStyle.Render(props.Summary + " · " + mode + " · ? for help")

	left := props.Left
	if left == "" {
		left = SubtleStyle.Render("Lanes")
	}

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
