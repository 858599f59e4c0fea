package admin

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/internal/cli/output"
	"github.com/marmos91/ringoctl/internal/telemetry"
	"github.com/marmos91/ringoctl/pkg/apiclient"
	"github.com/marmos91/ringoctl/pkg/config"
)

func newPasswdCmd(cfg *config.Config) *cobra.Command {
	var (
		password    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "passwd <id>",
		Short: "Reset a user's password",
		Long: `Reset the password of a user.

Without --password the service is asked to generate one (the request body
carries "password": null). On success the service response is printed as
received.

Examples:
  # Generate a password
  ringoctl admin passwd 42

  # Set a password (visible in shell history)
  ringoctl admin passwd 42 --password s3cret-pass

  # Prompt for the password with confirmation
  ringoctl admin passwd 42 --interactive`,
		Args: cmdutil.ExactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed("password")
			if changed && interactive {
				return cmdutil.NewUsageError(cmd, "--password and --interactive are mutually exclusive")
			}

			var pw *string
			switch {
			case changed:
				pw = &password
			case interactive:
				entered, err := cmdutil.PromptPassword()
				if err != nil {
					return cmdutil.HandleAbort(cmd.OutOrStdout(), err)
				}
				pw = &entered
			}

			return runPasswd(cmd, cfg, args[0], pw)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (generated by the service if omitted)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the new password")
	return cmd
}

func runPasswd(cmd *cobra.Command, cfg *config.Config, id string, password *string) (err error) {
	svc, err := cmdutil.ServiceContextFor(cfg, apiclient.UsersService)
	if err != nil {
		return err
	}

	printer, err := cmdutil.NewPrinter(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, end := cmdutil.StartCommand(cmd, svc.Name, "passwd")
	defer func() { end(err) }()
	telemetry.SetAttributes(ctx, telemetry.ItemID(id))

	resp, err := cmdutil.NewClient(cfg, svc.BaseURL).ResetPassword(ctx, id, password)
	if err != nil {
		return err
	}

	if resp.Success() {
		return output.PrintRaw(printer.Writer(), resp.Body)
	}

	printer.Label("Password reset")
	printer.StatusLine(resp.StatusCode)
	return nil
}
