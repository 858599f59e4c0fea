package telemetry

import "github.com/marmos91/ringoctl/pkg/config"

// Config holds OpenTelemetry configuration
type Config struct {
	// Enabled indicates whether tracing is enabled
	Enabled bool

	// ServiceName is the name reported to the trace backend
	ServiceName string

	// ServiceVersion is the version of the binary
	ServiceVersion string

	// Endpoint is the OTLP gRPC endpoint (e.g., "localhost:4317")
	Endpoint string

	// Insecure disables TLS towards the collector
	Insecure bool

	// SampleRate is the trace sampling rate (0.0 to 1.0)
	SampleRate float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "ringoctl",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}

// FromConfig builds a Config from the telemetry section of the CLI config.
func FromConfig(cfg config.TelemetryConfig, version string) Config {
	out := DefaultConfig()
	out.Enabled = cfg.Enabled
	out.Insecure = cfg.Insecure
	out.SampleRate = cfg.SampleRate
	if cfg.Endpoint != "" {
		out.Endpoint = cfg.Endpoint
	}
	if version != "" {
		out.ServiceVersion = version
	}
	return out
}
