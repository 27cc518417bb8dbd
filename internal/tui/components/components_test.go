package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/lanes/internal/config/colors"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

func init() {
	InitStyles(*colors.Light())
}

func task(id, title, desc string) models.Task {
	return models.Task{ID: types.TaskID("t-" + id), Title: title, Description: desc, CreatedAt: time.Unix(0, 0)}
}

func TestRenderLane_EmptyPlaceholder(t *testing.T) {
	out := RenderLane(LaneProps{Lane: models.LaneTodo, Width: 30})

	assert.Contains(t, out, "To Do (0)")
	assert.Contains(t, out, models.EmptyLanePlaceholder)
}

func TestRenderLane_ListsTasksInOrder(t *testing.T) {
	tasks := []models.Task{
		task("1", "Buy milk", ""),
		task("2", "Walk dog", "around the block"),
	}
	out := RenderLane(LaneProps{Lane: models.LaneInProgress, Tasks: tasks, Width: 40})

	assert.Contains(t, out, "In Progress (2)")
	assert.NotContains(t, out, models.EmptyLanePlaceholder)
	assert.Less(t, strings.Index(out, "Buy milk"), strings.Index(out, "Walk dog"))
	assert.Contains(t, out, "around the block")
}

func TestRenderLane_ScrollIndicators(t *testing.T) {
	var tasks []models.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, task(string(rune('a'+i)), "Task "+string(rune('A'+i)), ""))
	}

	out := RenderLane(LaneProps{
		Lane:         models.LaneDone,
		Tasks:        tasks,
		Selected:     true,
		SelectedTask: 9,
		Width:        40,
		Height:       laneChromeLines + 2*TaskCardHeight,
	})

	assert.Contains(t, out, "▲ more above")
	assert.Contains(t, out, "Task J", "cursor row stays visible")
	assert.NotContains(t, out, "Task A")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate("a rather long task title", 10)
	assert.LessOrEqual(t, len([]rune(got)), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRenderDescription(t *testing.T) {
	assert.Contains(t, RenderDescription(DescriptionProps{Width: 40}), "No description")

	out := RenderDescription(DescriptionProps{Description: "# Heading\n\nsome **bold** text", Width: 40})
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "**")
}
