package crud

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/internal/cli/itemfile"
	"github.com/marmos91/ringoctl/internal/logger"
	"github.com/marmos91/ringoctl/internal/telemetry"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newCreateCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <file>",
		Short: "Create items from a JSON file",
		Long: `Create items from a JSON file.

The file holds a single JSON object or a list of objects. One POST is sent
per object, in file order, and its status code is printed as it returns.
A failed item does not stop the following ones.

Examples:
  ringoctl crud ` + svc.Name + ` create items.json`,
		Args: cmdutil.ExactArgs("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, cfg, svc, args[0])
		},
	}
}

func runCreate(cmd *cobra.Command, cfg *config.Config, svc cmdutil.ServiceContext, path string) (err error) {
	items, err := itemfile.Read(path)
	if err != nil {
		return err
	}

	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, end := cmdutil.StartCommand(cmd, svc.Name, "create")
	defer func() { end(err) }()
	telemetry.SetAttributes(ctx, telemetry.ItemTotal(len(items)))
	logger.DebugCtx(ctx, "Item file loaded", logger.File(path), "items", len(items))

	client := cmdutil.NewClient(cfg, svc.BaseURL)
	for i, item := range items {
		printer.Label("Creating (%d/%d)", i+1, len(items))

		resp, err := client.CreateItem(ctx, svc.Name, item.Raw)
		if err != nil {
			printer.Println()
			return err
		}
		printer.StatusLine(resp.StatusCode)
	}

	return nil
}
