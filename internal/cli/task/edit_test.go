package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
	clitest "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestEditTask(t *testing.T) {
	t.Run("title only keeps description", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		task, err := app.Board.Create(t.Context(), models.LaneTodo, "Old", "keep me")
		require.NoError(t, err)

		output, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{task.ID.String(), "--title=New"})
		require.NoError(t, err)
		assert.Contains(t, output, "Updated task")

		loc, ok := app.Board.Find(task.ID)
		require.True(t, ok)
		assert.Equal(t, "New", loc.Task.Title)
		assert.Equal(t, "keep me", loc.Task.Description)
		assert.Equal(t, models.LaneTodo, loc.Lane)
	})

	t.Run("description can be cleared", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		task, err := app.Board.Create(t.Context(), models.LaneInProgress, "Title", "old")
		require.NoError(t, err)

		output, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{task.ID.String(), "--description=", "--json"})
		require.NoError(t, err)

		data := testutil.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "", data["description"])
		assert.Equal(t, "Title", data["title"])
	})

	t.Run("lane mismatch is not found", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		task := clitest.CreateTestTask(t, app, models.LaneTodo, "Title")

		_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{task.ID.String(), "--lane=done", "--title=X"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

		loc, _ := app.Board.Find(task.ID)
		assert.Equal(t, "Title", loc.Task.Title)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		task := clitest.CreateTestTask(t, app, models.LaneTodo, "Title")

		_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{task.ID.String(), "--title= "})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("nothing to edit", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)
		task := clitest.CreateTestTask(t, app, models.LaneTodo, "Title")

		_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{task.ID.String()})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
