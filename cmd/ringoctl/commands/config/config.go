// Package config implements configuration management commands.
package config

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

// NewCmd returns the config command group.
func NewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the ringoctl configuration.

The configuration holds the service registry and the logging, telemetry,
metrics, HTTP and output settings. It is read from
$XDG_CONFIG_HOME/ringoctl/config.yaml unless --config is given, and every
key can be overridden with a RINGO_* environment variable.`,
		Args: cobra.ArbitraryArgs,
		RunE: cmdutil.RequireSubcommand,
	}

	cmd.AddCommand(newShowCmd(cfg))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newServicesCmd(cfg))
	cmd.AddCommand(newValidateCmd(cfg))

	return cmd
}

// configPath returns the --config path or the default location.
func configPath() string {
	if cmdutil.Flags.ConfigPath != "" {
		return cmdutil.Flags.ConfigPath
	}
	return config.GetDefaultConfigPath()
}
