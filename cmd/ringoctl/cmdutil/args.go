package cmdutil

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ExactArgs requires exactly len(names) positional arguments and reports
// missing ones by name.
func ExactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) < len(names):
			missing := names[len(args):]
			return NewUsageError(cmd, "missing required argument: <%s>", strings.Join(missing, "> <"))
		case len(args) > len(names):
			return NewUsageError(cmd, "unexpected argument %q", args[len(names)])
		}
		return nil
	}
}

// NoArgs rejects any positional argument.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return NewUsageError(cmd, "unexpected argument %q", args[0])
	}
	return nil
}

// IntArg parses a positional argument that must be an integer.
func IntArg(cmd *cobra.Command, name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, NewUsageError(cmd, "invalid value %q for <%s>: must be an integer", value, name)
	}
	return n, nil
}

// RequireSubcommand is the RunE of command groups. Cobra would otherwise
// print help and succeed when the subcommand is missing or unknown.
func RequireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return NewUsageError(cmd, "missing command (available: %s)", strings.Join(subcommandNames(cmd), ", "))
	}
	return NewUsageError(cmd, "unknown command %q for %q", args[0], cmd.CommandPath())
}

// FlagError is the cobra flag error func. Malformed flags are usage errors.
func FlagError(cmd *cobra.Command, err error) error {
	return WrapUsageError(cmd, err)
}

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}
