// Package cmdutil provides shared utilities for ringoctl commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/internal/cli/output"
	"github.com/marmos91/ringoctl/internal/cli/prompt"
	"github.com/marmos91/ringoctl/internal/logger"
	"github.com/marmos91/ringoctl/internal/telemetry"
	"github.com/marmos91/ringoctl/pkg/apiclient"
	"github.com/marmos91/ringoctl/pkg/config"
	"github.com/marmos91/ringoctl/pkg/metrics"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
	Timeout    time.Duration
}

// Interactive prompts. Tests replace them to avoid a terminal.
var (
	Confirm        = prompt.Confirm
	PromptPassword = prompt.NewPassword
)

// ServiceContext is the target of a crud command: the service name and its
// registered base URL.
type ServiceContext struct {
	Name    string
	BaseURL string
}

// ServiceContextFor resolves a service name against the registry.
func ServiceContextFor(cfg *config.Config, name string) (ServiceContext, error) {
	url, err := cfg.ServiceURL(name)
	if err != nil {
		return ServiceContext{}, err
	}
	return ServiceContext{Name: name, BaseURL: url}, nil
}

// GetOutputFormatParsed returns the output format from the --output flag,
// falling back to the configured default.
func GetOutputFormatParsed(cfg *config.Config) (output.Format, error) {
	if Flags.Output != "" {
		return output.ParseFormat(Flags.Output)
	}
	return output.ParseFormat(cfg.Output.Format)
}

// NewPrinter returns a printer writing to the command's output.
func NewPrinter(cmd *cobra.Command, cfg *config.Config) (*output.Printer, error) {
	format, err := GetOutputFormatParsed(cfg)
	if err != nil {
		return nil, NewUsageError(cmd, "%v", err)
	}
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, format, output.ColorMode(cfg.Output.Color, Flags.NoColor, out)), nil
}

// NewClient returns an API client for baseURL. Requests are traced and
// counted when telemetry and metrics are enabled.
func NewClient(cfg *config.Config, baseURL string) *apiclient.Client {
	timeout := cfg.HTTP.Timeout
	if Flags.Timeout > 0 {
		timeout = Flags.Timeout
	}

	transport := metrics.InstrumentTransport(telemetry.Transport(http.DefaultTransport))

	return apiclient.New(baseURL,
		apiclient.WithTimeout(timeout),
		apiclient.WithTransport(transport),
		apiclient.WithUserAgent(cfg.HTTP.UserAgent),
		apiclient.WithMaxResponseSize(cfg.HTTP.MaxResponseSize),
	)
}

// StartCommand opens the command span and attaches a log context to the
// command's context. The returned func ends the span, recording err.
func StartCommand(cmd *cobra.Command, service, verb string) (context.Context, func(err error)) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := telemetry.StartCommandSpan(ctx, service, verb)
	lc := logger.NewLogContext(service, verb).WithTrace(telemetry.TraceID(ctx), telemetry.SpanID(ctx))
	ctx = logger.WithContext(ctx, lc)

	return ctx, func(err error) {
		telemetry.RecordError(ctx, err)
		span.End()
		logger.DebugCtx(ctx, "Command finished", logger.DurationMs(time.Since(lc.StartTime)))
	}
}

// RunWithConfirmation prompts for confirmation when ask is set and runs fn.
// A declined or aborted prompt prints "Aborted." and succeeds.
func RunWithConfirmation(w io.Writer, label string, ask bool, fn func() error) error {
	if ask {
		confirmed, err := Confirm(label, false)
		if err != nil {
			return HandleAbort(w, err)
		}
		if !confirmed {
			_, _ = fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}
	return fn()
}

// HandleAbort checks if error is an abort (Ctrl+C) and prints a message.
// Returns nil for abort (user cancelled), otherwise returns the original error.
func HandleAbort(w io.Writer, err error) error {
	if prompt.IsAborted(err) {
		_, _ = fmt.Fprintln(w, "\nAborted.")
		return nil
	}
	return err
}
