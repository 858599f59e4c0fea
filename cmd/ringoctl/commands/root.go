// Package commands implements the CLI commands for ringoctl.
package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	admincmd "github.com/marmos91/ringoctl/cmd/ringoctl/commands/admin"
	configcmd "github.com/marmos91/ringoctl/cmd/ringoctl/commands/config"
	crudcmd "github.com/marmos91/ringoctl/cmd/ringoctl/commands/crud"
	"github.com/marmos91/ringoctl/internal/logger"
	"github.com/marmos91/ringoctl/internal/telemetry"
	"github.com/marmos91/ringoctl/pkg/config"
	"github.com/marmos91/ringoctl/pkg/metrics"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// cleanups run after the command tree returns, in reverse order.
var cleanups []func(context.Context) error

// Execute loads the configuration, builds the command tree and runs it.
func Execute() error {
	cfg, err := config.Load(configPathFromArgs(os.Args[1:]))
	if err != nil {
		return err
	}

	err = NewRootCmd(cfg).Execute()
	return errors.Join(err, runCleanups(context.Background()))
}

// NewRootCmd builds the command tree for the services registered in cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ringoctl",
		Short: "Command-line client for CRUD REST services",
		Long: `ringoctl is a command-line client for REST services that expose a
collection of JSON items.

Each service in the registry gets a "crud <service>" command group with
create, read, update, delete and search verbs. The "admin" group resets
passwords on the users service.

Use "ringoctl [command] --help" for more information about a command.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          cmdutil.RequireSubcommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, cfg)
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/ringoctl/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (json|yaml|table)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout, e.g. 30s (0 disables it)")

	rootCmd.SetFlagErrorFunc(cmdutil.FlagError)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(crudcmd.NewCmd(cfg))
	rootCmd.AddCommand(admincmd.NewCmd(cfg))
	rootCmd.AddCommand(configcmd.NewCmd(cfg))

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// setup syncs the global flags and initializes logging, tracing and metrics.
func setup(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	cmdutil.Flags.ConfigPath, _ = flags.GetString("config")
	cmdutil.Flags.Output, _ = flags.GetString("output")
	cmdutil.Flags.NoColor, _ = flags.GetBool("no-color")
	cmdutil.Flags.Verbose, _ = flags.GetBool("verbose")
	cmdutil.Flags.Timeout, _ = flags.GetDuration("timeout")

	if _, err := cmdutil.GetOutputFormatParsed(cfg); err != nil {
		return cmdutil.WrapUsageError(cmd, err)
	}
	if cmdutil.Flags.Timeout < 0 {
		return cmdutil.NewUsageError(cmd, "invalid --timeout %s: must not be negative", cmdutil.Flags.Timeout)
	}

	logCfg := logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cfg.Logging.Output,
		NoColor: cmdutil.Flags.NoColor,
	}
	if cmdutil.Flags.Verbose {
		logCfg.Level = "DEBUG"
	}
	if err := logger.Init(logCfg); err != nil {
		return err
	}

	shutdown, err := telemetry.Init(cmd.Context(), telemetry.FromConfig(cfg.Telemetry, Version))
	if err != nil {
		return err
	}
	cleanups = append(cleanups, shutdown)

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		textfile := cfg.Metrics.Textfile
		cleanups = append(cleanups, func(context.Context) error {
			return metrics.WriteTextfile(textfile)
		})
	}

	logger.Debug("Configuration loaded", "services", strings.Join(cfg.ServiceNames(), ","))
	return nil
}

func runCleanups(ctx context.Context) error {
	var errs []error
	for i := len(cleanups) - 1; i >= 0; i-- {
		errs = append(errs, cleanups[i](ctx))
	}
	cleanups = nil
	return errors.Join(errs...)
}

// configPathFromArgs extracts --config before the command tree exists: the
// registry it names decides which crud commands are built.
func configPathFromArgs(args []string) string {
	fs := pflag.NewFlagSet("ringoctl", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.BoolP("help", "h", false, "")

	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}
