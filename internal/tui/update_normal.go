package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode handles keyboard input on the board
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	m.NotificationState.Clear()

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit

	case km.PrevLane, "left":
		m.navigateLane(-1)
	case km.NextLane, "right":
		m.navigateLane(1)
	case km.PrevTask, "up":
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
	case km.NextTask, "down":
		if m.UiState.SelectedTask() < len(m.currentTasks())-1 {
			m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		}

	case km.AddTask:
		return m.openAddForm()
	case km.EditTask:
		if loc, ok := m.currentTask(); ok {
			return m.openEditForm(loc)
		}
	case km.DeleteTask:
		if loc, ok := m.currentTask(); ok {
			m.pending = &loc
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
	case km.ViewTask:
		if loc, ok := m.currentTask(); ok {
			m.pending = &loc
			m.UiState.SetMode(state.DetailMode)
		}

	case km.MoveTaskRight:
		return m.shiftTask(true)
	case km.MoveTaskLeft:
		return m.shiftTask(false)

	case km.GrabTask, "space":
		if loc, ok := m.currentTask(); ok {
			m.DragState.Grab(loc.Task.ID, loc.Lane)
			m.UiState.SetMode(state.DragMode)
		}

	case km.ToggleDarkMode:
		m.toggleDarkMode()
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	}
	return m, nil
}

// navigateLane moves the cursor delta lanes, stopping at the edges
func (m Model) navigateLane(delta int) {
	lanes := models.Lanes()
	i := min(max(m.UiState.SelectedLane()+delta, 0), len(lanes)-1)
	m.selectLane(lanes[i])
}

// toggleDarkMode flips the palette and persists the preference
func (m Model) toggleDarkMode() {
	dark := !m.UiState.DarkMode()
	m.UiState.SetDarkMode(dark)
	components.InitStyles(m.Config.Theme.Scheme(dark))

	if err := m.App.Preferences.SetDarkMode(m.dbContext(), dark); err != nil {
		slog.Error("error saving dark mode preference", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save theme preference")
	}
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.Form = forms.NewTaskForm("", "")
	m.editing = nil
	m.UiState.SetMode(state.AddTaskMode)
	return m, m.Form.Init()
}

func (m Model) openEditForm(loc models.TaskLocation) (tea.Model, tea.Cmd) {
	m.Form = forms.NewTaskForm(loc.Task.Title, loc.Task.Description)
	m.editing = &loc
	m.UiState.SetMode(state.EditTaskMode)
	return m, m.Form.Init()
}
