package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/events"
)

// BoardEventMsg carries one board change from the event bus
type BoardEventMsg struct {
	Event events.Event
}

// listenForEvents returns a command that waits for the next board event.
// Returns nil once the bus is closed.
func (m Model) listenForEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	ctx := m.dbContext()

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return BoardEventMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
