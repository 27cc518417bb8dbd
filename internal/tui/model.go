package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/events"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	DragState         *state.DragState
	NotificationState *state.NotificationState

	// Form is the open add/edit dialog, nil otherwise
	Form *forms.Form
	// editing is the task the edit form targets
	editing *models.TaskLocation
	// pending is the task awaiting delete confirmation or shown in detail
	pending *models.TaskLocation

	// EventChan delivers board changes from the app bus
	EventChan <-chan events.Event
	unsub     func()
}

// InitialModel creates the TUI model over an opened application
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	uiState := state.NewUIState()
	dark, err := a.Preferences.DarkMode(ctx)
	if err != nil {
		slog.Error("error loading dark mode preference", "error", err)
	}
	uiState.SetDarkMode(dark)
	components.InitStyles(cfg.Theme.Scheme(dark))

	eventChan, unsub := a.Bus.Subscribe()

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           uiState,
		DragState:         state.NewDragState(),
		NotificationState: state.NewNotificationState(),
		EventChan:         eventChan,
		unsub:             unsub,
	}

	if a.LoadStatus == board.LoadedDefaultCorrupt {
		m.NotificationState.Add(state.LevelError, "Saved board was unreadable, starting with an empty board")
	}
	return m
}

// Init starts listening for board events
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// Close stops the event subscription
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

// currentLane returns the lane under the cursor
func (m Model) currentLane() models.Lane {
	lanes := models.Lanes()
	return lanes[min(m.UiState.SelectedLane(), len(lanes)-1)]
}

// currentTasks returns the tasks in the lane under the cursor
func (m Model) currentTasks() []models.Task {
	return m.App.Board.Tasks(m.currentLane())
}

// currentTask returns the task under the cursor, if any
func (m Model) currentTask() (models.TaskLocation, bool) {
	tasks := m.currentTasks()
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return models.TaskLocation{}, false
	}
	return models.TaskLocation{Lane: m.currentLane(), Task: tasks[i]}, true
}

// selectLane moves the cursor to lane, keeping the row inside it
func (m Model) selectLane(lane models.Lane) {
	m.UiState.SetSelectedLane(lane.Index())
	m.UiState.ClampSelectedTask(len(m.App.Board.Tasks(lane)))
}

// selectLast moves the cursor to the tail of lane, where moves and creates land
func (m Model) selectLast(lane models.Lane) {
	m.UiState.SetSelectedLane(lane.Index())
	m.UiState.SetSelectedTask(len(m.App.Board.Tasks(lane)) - 1)
}

// dbContext returns a context for store operations
func (m Model) dbContext() context.Context {
	if m.Ctx == nil {
		return context.Background()
	}
	return m.Ctx
}
