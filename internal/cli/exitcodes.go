package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task id not on the board, or not in the lane named by --lane.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A stored board that cannot be decoded, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown lane names, blank titles, moves past the first or last lane,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command.
// Reported is set once the error has already been written to the user.
type CommandError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// WithExitCode tags err with an exit code; nil stays nil
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// IsReported reports whether err was already printed by a formatter
func IsReported(err error) bool {
	var exitErr *CommandError
	return errors.As(err, &exitErr) && exitErr.Reported
}
