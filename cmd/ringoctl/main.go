package main

import (
	"fmt"
	"os"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/cmd/ringoctl/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := cmdutil.UsageHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(cmdutil.ExitCode(err))
	}
}
