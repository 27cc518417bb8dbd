package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// DeleteConfirmMessage is the question asked before a task is removed
const DeleteConfirmMessage = "Are you sure you want to delete this task?"

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteConfirm handles task deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.pending = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteTask performs the actual task deletion.
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	if m.pending != nil {
		_, _ = m.apply(events.DeleteIntent{TaskID: m.pending.Task.ID, Lane: m.pending.Lane})
		m.UiState.ClampSelectedTask(len(m.currentTasks()))
	}
	m.pending = nil
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// ============================================================================
// DETAIL AND HELP HANDLERS
// ============================================================================

// handleDetailMode handles input in the task detail view.
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.EditTask:
		if m.pending != nil {
			loc := *m.pending
			m.pending = nil
			return m.openEditForm(loc)
		}
	case km.ViewTask, km.Quit, "esc", "enter":
		m.pending = nil
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
