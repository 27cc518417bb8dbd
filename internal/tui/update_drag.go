package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// ============================================================================
// DRAG AND DROP HANDLERS
// ============================================================================

// handleDragMode moves the drop target while a task is grabbed.
// Dropping raises a MoveIntent with the triple captured at grab time.
func (m Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.PrevLane, "left":
		if prev, ok := m.DragState.Target().Prev(); ok {
			m.DragState.SetTarget(prev)
		}
	case km.NextLane, "right":
		if next, ok := m.DragState.Target().Next(); ok {
			m.DragState.SetTarget(next)
		}
	case km.DropTask, km.GrabTask, "space":
		return m.dropTask()
	case "esc":
		m.DragState.Clear()
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) dropTask() (tea.Model, tea.Cmd) {
	id, from, to := m.DragState.Drop()
	m.UiState.SetMode(state.NormalMode)

	res, _ := m.apply(events.MoveIntent{TaskID: id, From: from, To: to})
	if res.Changed {
		m.selectLast(to)
	} else {
		m.selectLane(from)
	}
	return m, nil
}

// dropTarget returns the lane highlighted while dragging, empty otherwise
func (m Model) dropTarget() models.Lane {
	if m.UiState.Mode() != state.DragMode || !m.DragState.Active() {
		return ""
	}
	return m.DragState.Target()
}
