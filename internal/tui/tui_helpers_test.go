package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
)

// setupTestModel creates a sized model over an in-memory board
func setupTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	return setupTestModelWithConfig(t, config.Default())
}

func setupTestModelWithConfig(t *testing.T, cfg *config.Config) (Model, *app.App) {
	t.Helper()
	ctx := context.Background()
	a := app.New(ctx, database.NewMemoryStore())
	t.Cleanup(func() { _ = a.Close() })

	m := InitialModel(ctx, a, cfg)
	t.Cleanup(m.Close)
	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, a
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// keyPress builds a key press message from its string form
func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// press sends each key in order
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = UpdateModelWithMessage(m, keyPress(k))
	}
	return m
}

// typeText sends text one rune at a time
func typeText(m Model, text string) Model {
	for _, r := range text {
		m = UpdateModelWithMessage(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func mustCreate(t *testing.T, a *app.App, lane models.Lane, title, description string) *models.Task {
	t.Helper()
	task, err := a.Board.Create(context.Background(), lane, title, description)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

func viewContent(m Model) string {
	return m.View().Content
}

func newTestApp(t *testing.T, kv database.KeyValueStore) *app.App {
	t.Helper()
	a := app.New(context.Background(), kv)
	t.Cleanup(func() { _ = a.Close() })
	return a
}
