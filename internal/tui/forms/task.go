package forms

// Field keys of the task form
const (
	KeyTitle       = "title"
	KeyDescription = "description"
)

const (
	titleCharLimit       = 200
	descriptionCharLimit = 2000
)

// NewTaskForm builds the add/edit dialog, prefilled for edits
func NewTaskForm(title, description string) *Form {
	return NewForm(
		NewTextInput(KeyTitle, "Title", "What needs doing?", title, titleCharLimit),
		NewTextArea(KeyDescription, "Description", "Optional details (markdown)", description, descriptionCharLimit),
	)
}

// TaskValues returns the title and description typed into a task form
func TaskValues(f *Form) (title, description string) {
	if field := f.Get(KeyTitle); field != nil {
		title = field.Value()
	}
	if field := f.Get(KeyDescription); field != nil {
		description = field.Value()
	}
	return title, description
}
