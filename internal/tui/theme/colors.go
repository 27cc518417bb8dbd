// Package theme holds the colors the TUI is currently rendering with.
package theme

import "github.com/thenoetrevino/lanes/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Create         string
	Edit           string
	Delete         string
	LaneBorder     string
	TaskBorder     string
	SelectedBorder string
	DropTarget     string
	Title          string
	Subtle         string
	Normal         string
	ErrorFg        string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	LaneBorder = scheme.LaneBorder
	TaskBorder = scheme.TaskBorder
	SelectedBorder = scheme.SelectedBorder
	DropTarget = scheme.DropTarget
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	ErrorFg = scheme.ErrorFg
}
