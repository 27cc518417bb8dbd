// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

const (
	// DialogWidthDivisor sizes modal dialogs relative to the screen width
	DialogWidthDivisor = 2

	MinDialogWidth = 40
	MaxDialogWidth = 80
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// DialogWidth picks a dialog width for the given screen
func DialogWidth(screenWidth int) int {
	return min(max(screenWidth/DialogWidthDivisor, MinDialogWidth), MaxDialogWidth)
}

// Compose stacks overlays on top of the base view
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, l := range overlays {
		if l != nil {
			stack = append(stack, l)
		}
	}
	if len(stack) == 1 {
		return base
	}
	return lipgloss.NewCanvas(stack...).Render()
}
