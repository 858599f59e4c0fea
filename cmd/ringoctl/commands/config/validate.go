package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the ringoctl configuration.

The configuration is loaded and validated before any command runs, so
reaching this command means the file is valid. It reports the file in use,
warnings and a short summary.

Examples:
  # Validate default config
  ringoctl config validate

  # Validate specific config file
  ringoctl config validate --config ./ringoctl.yaml`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := cmdutil.NewPrinter(cmd, cfg)
			if err != nil {
				return err
			}

			printer.Printf("Configuration file: %s\n", configPath())
			printer.Success("Validation: OK")

			if warnings := configWarnings(cfg); len(warnings) > 0 {
				printer.Println("\nWarnings:")
				for _, warning := range warnings {
					printer.Warning("  - " + warning)
				}
			}

			printer.Printf("\nConfiguration summary:\n")
			printer.Printf("  Services:        %d\n", len(cfg.Services))
			printer.Printf("  Log level:       %s\n", cfg.Logging.Level)
			printer.Printf("  Output format:   %s\n", cfg.Output.Format)
			return nil
		},
	}
}

func configWarnings(cfg *config.Config) []string {
	var warnings []string
	if cfg.HTTP.Timeout == 0 {
		warnings = append(warnings, "No request timeout configured - requests may block indefinitely")
	}
	for _, name := range cfg.ServiceNames() {
		url, _ := cfg.ServiceURL(name)
		if strings.Contains(url, "//0.0.0.0") {
			warnings = append(warnings, fmt.Sprintf("Service %q targets 0.0.0.0, which is not reachable on every platform", name))
		}
	}
	return warnings
}
