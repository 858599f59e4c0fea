package crud

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newReadCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Read an item by id",
		Long: `Read an item by its integer id and print it.

On failure only the status code is printed.

Examples:
  ringoctl crud ` + svc.Name + ` read 7
  ringoctl crud ` + svc.Name + ` read 7 -o yaml`,
		Args: cmdutil.ExactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.IntArg(cmd, "id", args[0])
			if err != nil {
				return err
			}
			return runRead(cmd, cfg, svc, id)
		},
	}
}

func runRead(cmd *cobra.Command, cfg *config.Config, svc cmdutil.ServiceContext, id int) (err error) {
	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, end := cmdutil.StartCommand(cmd, svc.Name, "read")
	defer func() { end(err) }()

	resp, err := cmdutil.NewClient(cfg, svc.BaseURL).ReadItem(ctx, svc.Name, id)
	if err != nil {
		return err
	}

	if resp.Success() {
		return printer.PrintBody(resp.Body)
	}

	printer.Label("Reading ID:%d", id)
	printer.StatusLine(resp.StatusCode)
	return nil
}
