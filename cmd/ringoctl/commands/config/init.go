package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a configuration file with the default settings.

The file is written to --config when given, otherwise to
$XDG_CONFIG_HOME/ringoctl/config.yaml. An existing file is kept unless
--force is set.

Examples:
  ringoctl config init
  ringoctl config init --config ./ringoctl.yaml --force`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cmdutil.Flags.ConfigPath
			if path == "" {
				var err error
				if path, err = config.InitConfig(force); err != nil {
					return err
				}
			} else if err := config.InitConfigToPath(path, force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
