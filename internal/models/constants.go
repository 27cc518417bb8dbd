package models

// ============================================================================
// STORAGE KEYS
// ============================================================================

// BoardKey is the key-value slot holding the serialized board
const BoardKey = "kanban-board-data"

// DarkModeKey is the key-value slot holding the dark mode preference
const DarkModeKey = "kanban-dark-mode"

// ============================================================================
// DISPLAY
// ============================================================================

// EmptyLanePlaceholder is shown for a lane with no tasks
const EmptyLanePlaceholder = "No tasks yet"
