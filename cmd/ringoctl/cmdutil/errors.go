package cmdutil

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError reports a malformed command line. No request is sent when one
// is returned.
type UsageError struct {
	// CommandPath is the full path of the command that rejected the input,
	// e.g. "ringoctl crud users read".
	CommandPath string
	Err         error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a UsageError for cmd.
func NewUsageError(cmd *cobra.Command, format string, args ...any) error {
	return &UsageError{CommandPath: commandPath(cmd), Err: fmt.Errorf(format, args...)}
}

// WrapUsageError marks err as a usage error of cmd.
func WrapUsageError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return err
	}
	return &UsageError{CommandPath: commandPath(cmd), Err: err}
}

// IsUsageError reports whether err is or wraps a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitError
	}
}

// UsageHint returns a pointer to the help of the command that rejected the
// input, or "" when err is not a usage error.
func UsageHint(err error) string {
	var ue *UsageError
	if !errors.As(err, &ue) || ue.CommandPath == "" {
		return ""
	}
	return fmt.Sprintf("Run '%s --help' for usage.", ue.CommandPath)
}

func commandPath(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}
	return cmd.CommandPath()
}
