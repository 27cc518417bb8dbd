package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddTaskMode                   // Add task form
	EditTaskMode                  // Edit task form, prefilled
	DeleteConfirmMode             // Confirming task deletion
	DragMode                      // A task is grabbed and follows the drop target
	DetailMode                    // Read-only task detail view
	HelpMode                      // Displaying help screen
)

// String names the mode for the status bar and logs
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case AddTaskMode:
		return "add"
	case EditTaskMode:
		return "edit"
	case DeleteConfirmMode:
		return "delete"
	case DragMode:
		return "drag"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	}
	return "unknown"
}

// UIState manages the user interface state.
// This includes navigation (lane/task selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedLane is the index of the lane with the cursor
	selectedLane int

	// selectedTask tracks the cursor row per lane so switching lanes
	// returns to where the user left off
	selectedTask map[int]int

	width  int
	height int

	mode Mode

	// darkMode mirrors the persisted preference
	darkMode bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedTask: make(map[int]int),
		mode:         NormalMode,
	}
}

// SelectedLane returns the index of the currently selected lane.
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SetSelectedLane updates the selected lane index.
func (s *UIState) SetSelectedLane(index int) {
	s.selectedLane = index
}

// SelectedTask returns the cursor row in the selected lane.
func (s *UIState) SelectedTask() int {
	return s.selectedTask[s.selectedLane]
}

// SetSelectedTask updates the cursor row in the selected lane.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask[s.selectedLane] = max(index, 0)
}

// ClampSelectedTask keeps the cursor inside a lane of length n
func (s *UIState) ClampSelectedTask(n int) {
	if s.SelectedTask() >= n {
		s.SetSelectedTask(n - 1)
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// DarkMode reports whether the dark palette is active.
func (s *UIState) DarkMode() bool {
	return s.darkMode
}

// SetDarkMode switches palettes.
func (s *UIState) SetDarkMode(dark bool) {
	s.darkMode = dark
}
