// Package crud implements the per-service CRUD commands for ringoctl.
package crud

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

// NewCmd returns the crud command group with one sub-command per service
// registered in cfg.
func NewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crud <service>",
		Short: "Create, read, update, delete and search service items",
		Long: `Issue CRUD requests against a registered service.

Registered services: ` + strings.Join(cfg.ServiceNames(), ", ") + `

Examples:
  # Create every item in a file
  ringoctl crud users create items.json

  # Read one item
  ringoctl crud users read 7

  # Update items (each must carry an "id")
  ringoctl crud users update items.json

  # Delete with a confirmation prompt
  ringoctl crud users delete 7 --confirm

  # Search with paging
  ringoctl crud users search --search ali --limit 10`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return unknownService(cmd, cfg, args)
		},
	}

	for _, name := range cfg.ServiceNames() {
		svc, err := cmdutil.ServiceContextFor(cfg, name)
		if err != nil {
			continue
		}
		cmd.AddCommand(newServiceCmd(cfg, svc))
	}

	return cmd
}

func unknownService(cmd *cobra.Command, cfg *config.Config, args []string) error {
	registered := strings.Join(cfg.ServiceNames(), ", ")
	if len(args) == 0 {
		return cmdutil.NewUsageError(cmd, "missing service (registered: %s)", registered)
	}
	return cmdutil.NewUsageError(cmd, "invalid service %q (registered: %s)", args[0], registered)
}

func newServiceCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   svc.Name,
		Short: "Manage " + svc.Name + " at " + svc.BaseURL,
		Args:  cobra.ArbitraryArgs,
		RunE:  cmdutil.RequireSubcommand,
	}

	cmd.AddCommand(newCreateCmd(cfg, svc))
	cmd.AddCommand(newReadCmd(cfg, svc))
	cmd.AddCommand(newUpdateCmd(cfg, svc))
	cmd.AddCommand(newDeleteCmd(cfg, svc))
	cmd.AddCommand(newSearchCmd(cfg, svc))

	return cmd
}
