package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/layers"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	base := m.viewBoard()

	var overlay *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddTaskMode, state.EditTaskMode:
		overlay = m.renderFormLayer()
	case state.DeleteConfirmMode:
		overlay = m.renderDeleteConfirmLayer()
	case state.DetailMode:
		overlay = m.renderDetailLayer()
	case state.HelpMode:
		overlay = m.renderHelpLayer()
	}

	v := tea.NewView(layers.Compose(base, overlay))
	v.AltScreen = true
	return v
}

// viewBoard renders the header, the three lanes side by side and the status bar
func (m Model) viewBoard() string {
	width, height := m.UiState.Width(), m.UiState.Height()
	lanes := models.Lanes()
	laneWidth := max(width/len(lanes), components.MinLaneWidth)
	// header + status bar
	laneHeight := max(height-2, 0)

	target := m.dropTarget()
	grabbed := ""
	if target != "" {
		grabbed = m.DragState.TaskID().String()
	}

	rendered := make([]string, 0, len(lanes))
	total := 0
	for i, lane := range lanes {
		tasks := m.App.Board.Tasks(lane)
		total += len(tasks)
		rendered = append(rendered, components.RenderLane(components.LaneProps{
			Lane:         lane,
			Tasks:        tasks,
			Selected:     i == m.UiState.SelectedLane() && target == "",
			SelectedTask: m.UiState.SelectedTask(),
			DropTarget:   lane == target,
			Grabbed:      grabbed,
			Width:        laneWidth,
			Height:       laneHeight,
		}))
	}

	header := components.TitleStyle.Render("Lanes")
	if target != "" {
		header += "  " + components.SubtleStyle.Render(
			fmt.Sprintf("moving to %s · enter to drop · esc to cancel", target.Title()))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if laneHeight > 0 {
		// Constrain content to fit terminal height, leaving room for the footer
		lines := strings.Split(board, "\n")
		if len(lines) > laneHeight {
			board = strings.Join(lines[:laneHeight], "\n")
		}
	}

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:   width,
		Left:    m.statusText(),
		Summary: taskSummary(total),
		Dark:    m.UiState.DarkMode(),
	})

	return header + "\n" + board + "\n" + footer
}

func (m Model) statusText() string {
	n, ok := m.NotificationState.Current()
	if !ok {
		return ""
	}
	if n.Level == state.LevelError {
		return components.ErrorBannerStyle.Render(n.Message)
	}
	return components.InfoBannerStyle.Render(n.Message)
}

func taskSummary(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
