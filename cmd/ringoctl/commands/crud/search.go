package crud

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/apiclient"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newSearchCmd(cfg *config.Config, svc cmdutil.ServiceContext) *cobra.Command {
	params := apiclient.DefaultSearchParams()
	var search string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search items",
		Long: `Search the ` + svc.Name + ` collection.

The search parameter is only sent when --search is given.

Examples:
  # First page with the default size
  ringoctl crud ` + svc.Name + ` search

  # Filter and page
  ringoctl crud ` + svc.Name + ` search --search ali --limit 10 --offset 20

  # Render the result as a table
  ringoctl crud ` + svc.Name + ` search -o table`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("search") {
				params.Search = &search
			}
			return runSearch(cmd, cfg, svc, params)
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", apiclient.DefaultSearchLimit, "Maximum number of items to return")
	cmd.Flags().IntVar(&params.Offset, "offset", apiclient.DefaultSearchOffset, "Number of items to skip")
	cmd.Flags().StringVar(&search, "search", "", "Filter string")
	return cmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config, svc cmdutil.ServiceContext, params apiclient.SearchParams) (err error) {
	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, end := cmdutil.StartCommand(cmd, svc.Name, "search")
	defer func() { end(err) }()

	resp, err := cmdutil.NewClient(cfg, svc.BaseURL).SearchItems(ctx, svc.Name, params)
	if err != nil {
		return err
	}

	if resp.Success() {
		return printer.PrintBody(resp.Body)
	}

	printer.Label("Searching")
	printer.Println(printer.Outcome(resp.StatusCode, fmt.Sprintf("%d (%s)", resp.StatusCode, strings.TrimSpace(string(resp.Body)))))
	return nil
}
