// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/config/colors"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// LaneStyle defines the appearance of the board lanes
	LaneStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (lane names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders, hints and help text
	SubtleStyle lipgloss.Style

	// CreateBoxStyle defines the add task dialog (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle defines the edit task dialog (blue border)
	EditBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the deletion confirmation (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle and HelpBoxStyle frame the read-only overlays
	DetailBoxStyle lipgloss.Style
	HelpBoxStyle   lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info messages
	InfoBannerStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	LaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.LaneBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		PaddingBottom(1)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		Foreground(lipgloss.Color(scheme.Normal))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Create))
	EditBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Edit))
	DeleteConfirmBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Delete))
	DetailBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Accent))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(scheme.Edit))

	ErrorBannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent))
}
