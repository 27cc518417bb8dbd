package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/layers"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// renderFormLayer renders the add/edit task dialog as a layer
func (m Model) renderFormLayer() *lipgloss.Layer {
	if m.Form == nil {
		return nil
	}

	style := components.CreateBoxStyle
	heading := fmt.Sprintf("New task in %s", m.currentLane().Title())
	if m.UiState.Mode() == state.EditTaskMode {
		style = components.EditBoxStyle
		heading = "Edit task"
	}

	content := components.TitleStyle.Render(heading) + "\n\n" +
		m.Form.View() +
		components.SubtleStyle.Render("tab: next field  enter: save  ctrl+s: save  esc: cancel")

	box := style.Width(layers.DialogWidth(m.UiState.Width())).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer asks before a task is removed
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	if m.pending == nil {
		return nil
	}

	content := components.TitleStyle.Render(DeleteConfirmMessage) + "\n\n" +
		fmt.Sprintf("%q in %s", m.pending.Task.Title, m.pending.Lane.Title()) + "\n\n" +
		components.SubtleStyle.Render("[y]es  [n]o")

	box := components.DeleteConfirmBoxStyle.Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDetailLayer shows the task with its description rendered as markdown
func (m Model) renderDetailLayer() *lipgloss.Layer {
	if m.pending == nil {
		return nil
	}

	width := layers.DialogWidth(m.UiState.Width())
	task := m.pending.Task

	content := components.TitleStyle.Render(task.Title) + "\n" +
		components.SubtleStyle.Render(fmt.Sprintf("%s · created %s",
			m.pending.Lane.Title(), task.CreatedAt.Local().Format("2006-01-02 15:04"))) + "\n\n" +
		components.RenderDescription(components.DescriptionProps{
			Description: task.Description,
			Width:       width - 6,
			Dark:        m.UiState.DarkMode(),
		}) + "\n\n" +
		components.SubtleStyle.Render(m.Config.KeyMappings.EditTask+": edit  esc: close")

	box := components.DetailBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
