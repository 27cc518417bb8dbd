package components

const (
	TaskCardHeight     = 4  // border(2) + title + description preview
	MinLaneWidth       = 24 // narrowest lane before the board stops shrinking
	DefaultLaneWidth   = 40 // used before the first window size message
	laneBorderOverhead = 4  // left/right border + left/right padding
	taskBorderOverhead = 2  // left/right card border
	laneChromeLines    = 5  // borders(2) + header + top indicator + bottom padding
)
