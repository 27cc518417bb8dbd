package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status bar.
// Only the latest notification is kept; any key press in normal mode clears it.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add replaces the current notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification to show, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
