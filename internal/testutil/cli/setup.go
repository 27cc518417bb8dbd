// Package cli holds helpers for running cobra commands against a test App.
// It is separate from testutil so service tests don't pull in cobra.
package cli

import (
	"testing"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

// SetupCLITest creates an in-memory store and returns both it and the App
func SetupCLITest(t *testing.T) (*database.MemoryStore, *app.App) {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, a *app.App, lane models.Lane, title string) *models.Task {
	t.Helper()
	return testutil.CreateTestTask(t, a, lane, title)
}
