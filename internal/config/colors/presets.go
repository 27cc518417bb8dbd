package colors

// Light returns the light scheme (paper background, ink text)
func Light() *ColorScheme {
	return &ColorScheme{
		Accent: "#624C83",

		Create: "#6F894E",
		Edit:   "#4D699B",
		Delete: "#C84053",

		LaneBorder:     "#A09CAC",
		TaskBorder:     "#C7C7C7",
		SelectedBorder: "#597B75",
		DropTarget:     "#CC6D00",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		ErrorFg: "#D7474B",
	}
}

// Dark returns the dark scheme (purple accent on charcoal)
func Dark() *ColorScheme {
	return &ColorScheme{
		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		LaneBorder:     "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DropTarget:     "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FF5F5F",
	}
}
