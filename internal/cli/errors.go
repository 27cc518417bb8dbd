package cli

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/services/board"
)

// ErrCorruptStorage is returned by mutating commands when the stored board
// could not be read and saving would overwrite it
var ErrCorruptStorage = errors.New("stored board is unreadable")

// errorInfo is how a known error is shown to the user
type errorInfo struct {
	code       string
	exit       int
	suggestion string
}

func classify(err error) errorInfo {
	switch {
	case errors.Is(err, models.ErrEmptyTitle):
		return errorInfo{"VALIDATION_ERROR", ExitValidation, "Pass a non-blank --title"}
	case errors.Is(err, models.ErrUnknownLane):
		return errorInfo{"INVALID_LANE", ExitValidation, "Valid lanes are: todo, in-progress, done"}
	case errors.Is(err, models.ErrNoNextLane), errors.Is(err, models.ErrNoPrevLane):
		return errorInfo{"NO_LANE", ExitValidation, ""}
	case errors.Is(err, board.ErrTaskNotFound):
		return errorInfo{"TASK_NOT_FOUND", ExitNotFound, "Use 'lanes task list' to see task ids"}
	case errors.Is(err, ErrCorruptStorage), errors.Is(err, database.ErrCorruptBoard):
		return errorInfo{"DATA_ERROR", ExitDataErr, "Inspect the stored board or pass --overwrite-corrupt to start over"}
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == ExitUsage {
		return errorInfo{"USAGE_ERROR", ExitUsage, "Run with --help for usage"}
	}
	return errorInfo{"ERROR", ExitError, ""}
}

// HandleError reports err through the formatter and returns it tagged with
// its exit code, marked as reported so main doesn't print it twice.
func HandleError(f *OutputFormatter, err error) error {
	if err == nil {
		return nil
	}
	info := classify(err)
	if fmtErr := f.ErrorWithSuggestion(info.code, err.Error(), info.suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: info.exit, Err: err, Reported: true}
}
