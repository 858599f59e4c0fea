package config

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/internal/cli/output"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after defaults, the config file and
RINGO_* environment overrides have been applied.

Examples:
  ringoctl config show
  ringoctl config show -o json`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := cmdutil.NewPrinter(cmd, cfg)
			if err != nil {
				return err
			}
			// Nested settings do not fit a table.
			if printer.Format() == output.FormatJSON {
				return output.PrintJSON(printer.Writer(), cfg)
			}
			return output.PrintYAML(printer.Writer(), cfg)
		},
	}
}
