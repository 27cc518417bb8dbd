package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// EmptyTitleMessage is shown when a form is submitted without a title
const EmptyTitleMessage = "Please enter a task title"

// updateForm forwards msg to the open task form and acts on submit or abort
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)

	switch m.Form.State() {
	case forms.StateAborted:
		return m.closeForm(), cmd
	case forms.StateCompleted:
		return m.submitForm()
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title, description := forms.TaskValues(m.Form)
	if strings.TrimSpace(title) == "" {
		m.Form.Reopen(EmptyTitleMessage)
		return m, nil
	}

	if m.editing == nil {
		lane := m.currentLane()
		res, err := m.apply(events.CreateIntent{Lane: lane, Title: title, Description: description})
		if err == nil || res.Changed {
			m.selectLast(lane)
		}
		return m.closeForm(), nil
	}

	loc := *m.editing
	res, err := m.apply(events.UpdateIntent{
		TaskID:      loc.Task.ID,
		Lane:        loc.Lane,
		Title:       title,
		Description: description,
	})
	if err == nil && !res.Changed {
		m.NotificationState.Add(state.LevelInfo, "Task no longer exists")
	}
	return m.closeForm(), nil
}

func (m Model) closeForm() Model {
	m.Form = nil
	m.editing = nil
	m.UiState.SetMode(state.NormalMode)
	return m
}
