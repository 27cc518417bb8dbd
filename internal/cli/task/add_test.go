package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/testutil"
	clitest "github.com/thenoetrevino/lanes/internal/testutil/cli"
)

func TestAddTask_Positive(t *testing.T) {
	t.Run("default lane is todo", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title=Write docs"})
		require.NoError(t, err)
		assert.Contains(t, output, "Created task")
		assert.Contains(t, output, "in To Do")

		tasks := app.Board.Tasks(models.LaneTodo)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Write docs", tasks[0].Title)
	})

	t.Run("quiet mode prints only the id", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title=Quiet", "--lane=done", "--quiet"})
		require.NoError(t, err)

		tasks := app.Board.Tasks(models.LaneDone)
		require.Len(t, tasks, 1)
		assert.Equal(t, tasks[0].ID.String()+"\n", output)
	})

	t.Run("json output", func(t *testing.T) {
		_, app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--title=  Padded  ", "--description=Some *markdown*", "--lane=inProgress", "--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Padded", data["title"])
		assert.Equal(t, "Some *markdown*", data["description"])
		assert.Equal(t, "in-progress", data["lane"])
		assert.NotEmpty(t, data["id"])
		assert.NotEmpty(t, data["created_at"])
	})

	t.Run("task is persisted", func(t *testing.T) {
		kv, app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title=Saved"})
		require.NoError(t, err)

		saved, err := database.NewBoardPersister(kv).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, saved[models.LaneTodo], 1)
		assert.Equal(t, "Saved", saved[models.LaneTodo][0].Title)
	})
}

func TestAddTask_Negative(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing title", []string{}, cli.ExitUsage, "--title"},
		{"blank title", []string{"--title=   "}, cli.ExitValidation, "VALIDATION_ERROR"},
		{"unknown lane", []string{"--title=x", "--lane=archive"}, cli.ExitValidation, "INVALID_LANE"},
		{"positional args", []string{"extra"}, cli.ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.wantErr != "" {
				assert.True(t, strings.Contains(output, tt.wantErr) || strings.Contains(err.Error(), tt.wantErr),
					"output %q / error %q should mention %q", output, err, tt.wantErr)
			}
			assert.Zero(t, app.Board.Snapshot().Len())
		})
	}
}

func TestAddTask_CorruptBoard(t *testing.T) {
	t.Run("refuses to overwrite", func(t *testing.T) {
		kv, app := testutil.SetupCorruptApp(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title=New", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
		assert.Contains(t, output, "DATA_ERROR")

		raw, err := kv.Get(context.Background(), models.BoardKey)
		require.NoError(t, err)
		assert.Equal(t, `{{{not json`, string(raw), "stored data must be left alone")
	})

	t.Run("overwrite flag replaces the board", func(t *testing.T) {
		_, app := testutil.SetupCorruptApp(t)

		_, err := clitest.ExecuteWithOptions(t, app, cli.Options{OverwriteCorrupt: true}, AddCmd(), []string{"--title=New"})
		require.NoError(t, err)
		assert.Len(t, app.Board.Tasks(models.LaneTodo), 1)
	})
}
