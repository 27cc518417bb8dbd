package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/layers"
)

// helpSection groups key bindings under a heading
type helpSection struct {
	title string
	keys  [][2]string
}

func (m Model) helpSections() []helpSection {
	km := m.Config.KeyMappings
	return []helpSection{
		{"Navigation", [][2]string{
			{km.PrevLane + " / ←", "previous lane"},
			{km.NextLane + " / →", "next lane"},
			{km.PrevTask + " / ↑", "previous task"},
			{km.NextTask + " / ↓", "next task"},
		}},
		{"Tasks", [][2]string{
			{km.AddTask, "add task"},
			{km.EditTask, "edit task"},
			{km.DeleteTask, "delete task"},
			{km.ViewTask, "view task"},
			{km.MoveTaskLeft, "move task left"},
			{km.MoveTaskRight, "move task right"},
		}},
		{"Drag and drop", [][2]string{
			{km.GrabTask + " / space", "grab task"},
			{km.DropTask, "drop task"},
			{"esc", "cancel"},
		}},
		{"Other", [][2]string{
			{km.ToggleDarkMode, "toggle dark mode"},
			{km.ShowHelp, "toggle help"},
			{km.Quit + " / ctrl+c", "quit"},
		}},
	}
}

// renderHelpLayer lists the active key bindings
func (m Model) renderHelpLayer() *lipgloss.Layer {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")

	for _, section := range m.helpSections() {
		b.WriteString("\n")
		b.WriteString(components.TitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&b, "  %-14s %s\n", k[0], components.SubtleStyle.Render(k[1]))
		}
	}

	box := components.HelpBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
