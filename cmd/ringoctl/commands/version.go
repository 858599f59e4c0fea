package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/internal/cli/timeutil"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the ringoctl version, build information, and system details.`,
		Args:  cmdutil.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(w, Version)
				return
			}

			_, _ = fmt.Fprintf(w, "ringoctl %s\n", Version)
			_, _ = fmt.Fprintf(w, "  Commit:     %s\n", Commit)
			_, _ = fmt.Fprintf(w, "  Built:      %s\n", timeutil.FormatTime(Date))
			_, _ = fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
			_, _ = fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Show only version number")
	return cmd
}
