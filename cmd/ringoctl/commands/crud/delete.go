package crud

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newDeleteCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item by id",
		Long: `Delete an item by its integer id.

With --confirm you are asked before the request is sent.

Examples:
  # Delete immediately
  ringoctl crud ` + svc.Name + ` delete 7

  # Ask first
  ringoctl crud ` + svc.Name + ` delete 7 --confirm`,
		Args: cmdutil.ExactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.IntArg(cmd, "id", args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, cfg, svc, id, confirm)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Ask for confirmation before deleting")
	return cmd
}

func runDelete(cmd *cobra.Command, cfg *config.Config, svc cmdutil.ServiceContext, id int, confirm bool) error {
	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("Delete %s item %d?", svc.Name, id)
	return cmdutil.RunWithConfirmation(printer.Writer(), label, confirm, func() (err error) {
		ctx, end := cmdutil.StartCommand(cmd, svc.Name, "delete")
		defer func() { end(err) }()

		printer.Label("Deleting ID:%d", id)
		resp, err := cmdutil.NewClient(cfg, svc.BaseURL).DeleteItem(ctx, svc.Name, id)
		if err != nil {
			printer.Println()
			return err
		}
		printer.StatusLine(resp.StatusCode)
		return nil
	})
}
