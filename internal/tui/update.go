package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case BoardEventMsg:
		// The board is read fresh on every render; keep the cursor valid
		// and keep listening.
		m.UiState.ClampSelectedTask(len(m.currentTasks()))
		return m, m.listenForEvents()
	}

	// Forms need every message, including cursor blinks
	if m.Form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.DragMode:
		return m.handleDragMode(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	}
	return m.handleNormalMode(keyMsg)
}

// apply runs an intent against the board store and reports failures in the
// status bar. Blank titles are left to the caller.
func (m Model) apply(intent events.Intent) (events.Result, error) {
	res, err := events.Apply(m.dbContext(), m.App.Board, intent)
	if err != nil && !errors.Is(err, models.ErrEmptyTitle) {
		slog.Error("error applying intent", "intent", intentName(intent), "error", err)
		if res.Changed {
			m.NotificationState.Add(state.LevelError, "Change kept but not saved: "+err.Error())
		} else {
			m.NotificationState.Add(state.LevelError, err.Error())
		}
	}
	return res, err
}

func intentName(intent events.Intent) string {
	switch intent.(type) {
	case events.CreateIntent:
		return "create"
	case events.UpdateIntent:
		return "update"
	case events.DeleteIntent:
		return "delete"
	case events.MoveIntent:
		return "move"
	}
	return "unknown"
}

// shiftTask moves the selected task one lane over and keeps it selected
func (m Model) shiftTask(right bool) (tea.Model, tea.Cmd) {
	loc, ok := m.currentTask()
	if !ok {
		return m, nil
	}

	var (
		to  models.Lane
		err error
	)
	if right {
		to, err = m.App.Board.MoveToNext(m.dbContext(), loc.Task.ID)
	} else {
		to, err = m.App.Board.MoveToPrev(m.dbContext(), loc.Task.ID)
	}

	switch {
	case errors.Is(err, models.ErrNoNextLane), errors.Is(err, models.ErrNoPrevLane):
		return m, nil
	case errors.Is(err, board.ErrTaskNotFound):
		m.UiState.ClampSelectedTask(len(m.currentTasks()))
		return m, nil
	case err != nil:
		// The move happened in memory; only the save failed
		slog.Error("error moving task", "task", loc.Task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Change kept but not saved: "+err.Error())
	}

	m.selectLast(to)
	return m, nil
}
