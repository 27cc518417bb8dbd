package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lanes/internal/models"
)

// ExactArgs is cobra.ExactArgs with the usage exit code attached
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return WithExitCode(ExitUsage, cobra.ExactArgs(n)(cmd, args))
	}
}

// RequireFlags fails with a usage error when any named flag wasn't set
func RequireFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return WithExitCode(ExitUsage, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", ")))
	}
	return nil
}

// LaneFlag parses the lane named by flag
func LaneFlag(cmd *cobra.Command, flag string) (models.Lane, error) {
	value, _ := cmd.Flags().GetString(flag)
	return models.ParseLane(value)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return string(data), nil
}
