package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

type DescriptionProps struct {
	Description string
	Width       int
	Dark        bool
}

type rendererKey struct {
	width int
	dark  bool
}

// Cache Glamour renderers by width and mode to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and mode
func getRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, dark: dark}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderDescription renders a task description as markdown.
// Falls back to the raw text if rendering fails.
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	renderer, err := getRenderer(max(props.Width, 20), props.Dark)
	if err == nil {
		rendered, err := renderer.Render(props.Description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Description
}
