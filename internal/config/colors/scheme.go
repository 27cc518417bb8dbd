package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add task dialog
	Edit   string `yaml:"edit"`   // edit task dialog
	Delete string `yaml:"delete"` // delete confirmation

	// UI element colors
	LaneBorder     string `yaml:"lane_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DropTarget     string `yaml:"drop_target"` // lane highlighted while dragging

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // placeholders and help text
	Normal string `yaml:"normal"`

	// Notification colors
	ErrorFg string `yaml:"error_fg"`
}

// Palette holds one scheme per display mode.
// The dark mode preference picks which one the TUI renders with.
type Palette struct {
	Light ColorScheme `yaml:"light"`
	Dark  ColorScheme `yaml:"dark"`
}

// DefaultPalette returns the built-in light and dark schemes
func DefaultPalette() Palette {
	return Palette{Light: *Light(), Dark: *Dark()}
}

// Scheme returns the scheme for the given mode
func (p Palette) Scheme(dark bool) ColorScheme {
	if dark {
		return p.Dark
	}
	return p.Light
}

// ApplyDefaults fills in every empty color from the built-in schemes
func (p *Palette) ApplyDefaults() {
	p.Light.mergeMissing(Light())
	p.Dark.mergeMissing(Dark())
}

// mergeMissing copies each color from base that c leaves empty
func (c *ColorScheme) mergeMissing(base *ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, base.Accent)
	fill(&c.Create, base.Create)
	fill(&c.Edit, base.Edit)
	fill(&c.Delete, base.Delete)
	fill(&c.LaneBorder, base.LaneBorder)
	fill(&c.TaskBorder, base.TaskBorder)
	fill(&c.SelectedBorder, base.SelectedBorder)
	fill(&c.DropTarget, base.DropTarget)
	fill(&c.Title, base.Title)
	fill(&c.Subtle, base.Subtle)
	fill(&c.Normal, base.Normal)
	fill(&c.ErrorFg, base.ErrorFg)
}
