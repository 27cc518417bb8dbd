// Package forms provides the small field and form toolkit behind the task
// add and edit dialogs.
package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the field's current text
	Value() string

	// Multiline fields keep enter for themselves
	Multiline() bool
}

// Form manages a collection of fields.
// Enter on a single-line field or ctrl+s anywhere submits; esc aborts.
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	err          string
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{
		fields: fields,
		state:  StateInProgress,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil

		case "tab", "shift+tab":
			return f, f.handleTabNavigation(keyMsg.String() == "shift+tab")

		case "ctrl+s":
			f.state = StateCompleted
			return f, nil

		case "enter":
			if f.focusedIndex < len(f.fields) && !f.fields[f.focusedIndex].Multiline() {
				f.state = StateCompleted
				return f, nil
			}
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(field.View())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Bold(true).
			Render(f.err))
		b.WriteString("\n")
	}
	return b.String()
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Reopen puts a completed form back in progress with a message for the user
func (f *Form) Reopen(errMsg string) {
	f.state = StateInProgress
	f.err = errMsg
}

// Err returns the message shown under the fields
func (f *Form) Err() string {
	return f.err
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Key()
	}
	return ""
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// fieldTitle renders a field label in the accent color
func fieldTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtle))
	if focused {
		style = style.Foreground(lipgloss.Color(theme.Accent))
	}
	return style.Render(title)
}
