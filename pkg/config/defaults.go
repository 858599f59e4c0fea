package config

import (
	"strings"
)

const (
	// DefaultUsersService is the service the admin commands always target.
	DefaultUsersService = "users"

	// DefaultUsersURL is the built-in base URL of the users service.
	DefaultUsersURL = "http://0.0.0.0:5000"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyHTTPDefaults(&cfg.HTTP)
	applyOutputDefaults(&cfg.Output)
	applyServiceDefaults(cfg)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
// Logs default to stderr so they never interleave with command output.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
}

func applyHTTPDefaults(cfg *HTTPConfig) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ringoctl"
	}
}

func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	cfg.Color = strings.ToLower(cfg.Color)
}

// applyServiceDefaults makes sure the users service is always registered and
// strips trailing slashes from base URLs.
func applyServiceDefaults(cfg *Config) {
	if cfg.Services == nil {
		cfg.Services = make(map[string]ServiceConfig)
	}
	if _, ok := cfg.Services[DefaultUsersService]; !ok {
		cfg.Services[DefaultUsersService] = ServiceConfig{URL: DefaultUsersURL}
	}
	for name, svc := range cfg.Services {
		svc.URL = strings.TrimRight(svc.URL, "/")
		cfg.Services[name] = svc
	}
}

// GetDefaultConfig returns a Config with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Telemetry: TelemetryConfig{
			Insecure: true,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}
