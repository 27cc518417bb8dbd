package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Drag and drop
	GrabTask string `yaml:"grab_task"`
	DropTask string `yaml:"drop_task"`

	// Navigation
	PrevLane string `yaml:"prev_lane"`
	NextLane string `yaml:"next_lane"`
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ToggleDarkMode string `yaml:"toggle_dark_mode"`
	ShowHelp       string `yaml:"show_help"`
	Quit           string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		ViewTask:      "v",
		MoveTaskLeft:  "<",
		MoveTaskRight: ">",

		GrabTask: "m",
		DropTask: "enter",

		PrevLane: "h",
		NextLane: "l",
		PrevTask: "k",
		NextTask: "j",

		ToggleDarkMode: "t",
		ShowHelp:       "?",
		Quit:           "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.GrabTask, defaults.GrabTask)
	fill(&k.DropTask, defaults.DropTask)
	fill(&k.PrevLane, defaults.PrevLane)
	fill(&k.NextLane, defaults.NextLane)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ToggleDarkMode, defaults.ToggleDarkMode)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
