package crud

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/internal/cli/itemfile"
	"github.com/marmos91/ringoctl/internal/logger"
	"github.com/marmos91/ringoctl/internal/telemetry"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newUpdateCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update <file>",
		Short: "Update items from a JSON file",
		Long: `Update items from a JSON file.

The file holds a single JSON object or a list of objects, each carrying an
"id" field. Every item is checked before the first request is sent. One PUT
is sent per object to its id, in file order.

Examples:
  ringoctl crud ` + svc.Name + ` update items.json`,
		Args: cmdutil.ExactArgs("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, cfg, svc, args[0])
		},
	}
}

func runUpdate(cmd *cobra.Command, cfg *config.Config, svc cmdutil.ServiceContext, path string) (err error) {
	items, err := itemfile.Read(path)
	if err != nil {
		return err
	}
	ids, err := itemfile.IDs(items)
	if err != nil {
		return err
	}

	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, end := cmdutil.StartCommand(cmd, svc.Name, "update")
	defer func() { end(err) }()
	telemetry.SetAttributes(ctx, telemetry.ItemTotal(len(items)))
	logger.DebugCtx(ctx, "Item file loaded", logger.File(path), "items", len(items))

	client := cmdutil.NewClient(cfg, svc.BaseURL)
	for i, item := range items {
		printer.Label("Updating ID:%s (%d/%d)", ids[i], i+1, len(items))

		resp, err := client.UpdateItem(ctx, svc.Name, ids[i], item.Raw)
		if err != nil {
			printer.Println()
			return err
		}
		printer.StatusLine(resp.StatusCode)
	}

	return nil
}
