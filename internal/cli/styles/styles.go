// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lanes/internal/config/colors"
	"github.com/thenoetrevino/lanes/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Lane:", "Created:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	laneColors = map[models.Lane]string{}
)

func init() {
	Init(*colors.Light())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	laneColors = map[models.Lane]string{
		models.LaneTodo:       scheme.Edit,
		models.LaneInProgress: scheme.DropTarget,
		models.LaneDone:       scheme.Create,
	}
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderLaneHeader renders "Title (n)" in the lane's color
func RenderLaneHeader(lane models.Lane, count int) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(laneColors[lane])).
		Render(lane.Title()) +
		SubtitleStyle.Render(" ("+strconv.Itoa(count)+")")
}

// RenderLaneChip renders a lane as "[Title]" in the lane's color
func RenderLaneChip(lane models.Lane) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(laneColors[lane])).
		Bold(true).
		Render("[" + lane.Title() + "]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
