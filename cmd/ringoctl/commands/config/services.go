package config

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
)

type serviceEntry struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type serviceList []serviceEntry

func (l serviceList) Headers() []string {
	return []string{"NAME", "URL"}
}

func (l serviceList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{s.Name, s.URL})
	}
	return rows
}

func newServicesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List registered services",
		Long: `List the services of the registry and their base URLs.

Examples:
  ringoctl config services
  ringoctl config services -o table`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := cmdutil.NewPrinter(cmd, cfg)
			if err != nil {
				return err
			}

			list := make(serviceList, 0, len(cfg.Services))
			for _, name := range cfg.ServiceNames() {
				url, _ := cfg.ServiceURL(name)
				list = append(list, serviceEntry{Name: name, URL: url})
			}
			return printer.Print(list)
		},
	}
}
