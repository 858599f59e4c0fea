// Package admin implements administrative commands for ringoctl.
package admin

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

// NewCmd returns the admin command group.
func NewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
		Long: `Administrative operations on the users service.

Admin commands always target the "users" service, whatever service other
commands are pointed at.

Examples:
  # Let the service generate a new password
  ringoctl admin passwd 42

  # Set a given password
  ringoctl admin passwd 42 --password s3cret-pass

  # Prompt for the password
  ringoctl admin passwd 42 -i`,
		Args: cobra.ArbitraryArgs,
		RunE: cmdutil.RequireSubcommand,
	}

	cmd.AddCommand(newPasswdCmd(cfg))
	return cmd
}
