package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
	clitest "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestRootCmd_HasTaskCommands(t *testing.T) {
	root := NewRootCmd()

	taskCmd, _, err := root.Find([]string{"task"})
	require.NoError(t, err)

	var names []string
	for _, c := range taskCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "show", "edit", "delete", "move", "done", "start"}, names)
}

func TestRootCmd_GlobalFlagsReachSubcommands(t *testing.T) {
	_, app := testutil.SetupCorruptApp(t)

	_, err := clitest.ExecuteCLICommand(t, app, NewRootCmd(), []string{
		"--overwrite-corrupt", "task", "add", "--title=Fresh start",
	})
	require.NoError(t, err)
	assert.Len(t, app.Board.Tasks(models.LaneTodo), 1)
}

func TestRootCmd_UnknownFlagIsUsageError(t *testing.T) {
	root := NewRootCmd()
	testutil.SetupCobraCommand(root, []string{"task", "list", "--bogus"})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRootCmd_EndToEnd(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	id, err := clitest.ExecuteCLICommand(t, app, NewRootCmd(), []string{"task", "add", "--title=Buy milk", "--quiet"})
	require.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, app, NewRootCmd(), []string{"task", "move", id[:len(id)-1], "--from=todo", "--to=done"})
	require.NoError(t, err)

	assert.Empty(t, app.Board.Tasks(models.LaneTodo))
	done := app.Board.Tasks(models.LaneDone)
	require.Len(t, done, 1)
	assert.Equal(t, "Buy milk", done[0].Title)
}
