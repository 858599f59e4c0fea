package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/marmos91/ringoctl/internal/bytesize"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config represents the ringoctl configuration.
//
// The configuration holds the static service registry (service name to base
// URL) and the client-side ambient settings:
//   - Logging configuration
//   - Telemetry/tracing configuration
//   - Client-side request metrics
//   - HTTP client settings
//   - Output preferences
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (RINGO_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`

	// Telemetry controls OpenTelemetry tracing of outbound requests
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry" json:"telemetry"`

	// Metrics controls client-side Prometheus request metrics
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`

	// HTTP configures the outbound HTTP client
	HTTP HTTPConfig `mapstructure:"http" yaml:"http" json:"http"`

	// Output controls how responses are rendered
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Services is the service registry: service name to base URL.
	// The registry is immutable once loaded.
	Services map[string]ServiceConfig `mapstructure:"services" validate:"required,min=1,dive" yaml:"services" json:"services"`
}

// ServiceConfig describes one remote service.
type ServiceConfig struct {
	// URL is the base URL of the service, e.g. http://0.0.0.0:5000.
	// Requests go to <URL>/<service>[/<id>[/<subresource>]].
	URL string `mapstructure:"url" validate:"required,url" yaml:"url" json:"url"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level" json:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format" json:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output" json:"output"`
}

// TelemetryConfig controls OpenTelemetry distributed tracing.
// When enabled, every outbound request is wrapped in a client span and the
// trace context is propagated to the remote service.
type TelemetryConfig struct {
	// Enabled controls whether tracing is enabled
	// Default: false (opt-in for telemetry)
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Endpoint is the OTLP collector endpoint (host:port)
	// Default: "localhost:4317" (standard OTLP gRPC port)
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`

	// Insecure controls whether to use insecure (non-TLS) connection
	// Default: true (for local development)
	Insecure bool `mapstructure:"insecure" yaml:"insecure" json:"insecure"`

	// SampleRate controls the trace sampling rate (0.0 to 1.0)
	// Default: 1.0 (sample all)
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate" json:"sample_rate"`
}

// MetricsConfig configures client-side request metrics.
// Metrics are collected for the lifetime of a single command and, when
// Textfile is set, written in the Prometheus text format on exit (suitable
// for the node_exporter textfile collector).
type MetricsConfig struct {
	// Enabled controls whether request metrics are collected
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Textfile is the path the metrics are written to on exit
	Textfile string `mapstructure:"textfile" validate:"required_if=Enabled true" yaml:"textfile" json:"textfile"`
}

// HTTPConfig configures the outbound HTTP client.
type HTTPConfig struct {
	// Timeout is the overall per-request timeout.
	// Default: 0 (no timeout)
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0" yaml:"timeout" json:"timeout"`

	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent" json:"user_agent"`

	// MaxResponseSize caps the response body size, e.g. "10MiB".
	// Default: 0 (no cap)
	MaxResponseSize bytesize.ByteSize `mapstructure:"max_response_size" yaml:"max_response_size" json:"max_response_size"`
}

// OutputConfig controls how responses are rendered.
type OutputConfig struct {
	// Format is the default body format: json, yaml or table
	// Default: json
	Format string `mapstructure:"format" validate:"required,oneof=json yaml yml table" yaml:"format" json:"format"`

	// Color controls ANSI colors: auto, always, never
	// Default: auto (colors only when stdout is a terminal)
	Color string `mapstructure:"color" validate:"required,oneof=auto always never" yaml:"color" json:"color"`
}

// ServiceNames returns the registered service names in sorted order.
func (c *Config) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServiceURL returns the base URL registered for the given service.
func (c *Config) ServiceURL(name string) (string, error) {
	svc, ok := c.Services[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (registered: %s)", ErrUnknownService, name, strings.Join(c.ServiceNames(), ", "))
	}
	return strings.TrimRight(svc.URL, "/"), nil
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (RINGO_*)
//  2. Configuration file
//  3. Default values
//
// A missing configuration file is not an error: the defaults (including the
// built-in "users" service) are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with defaults, environment variables and
// config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Defaults are registered explicitly so that AutomaticEnv can override
	// keys that never appear in the config file.
	// Example: RINGO_SERVICES_USERS_URL=http://users.internal:5000
	defaults := GetDefaultConfig()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("telemetry.enabled", defaults.Telemetry.Enabled)
	v.SetDefault("telemetry.endpoint", defaults.Telemetry.Endpoint)
	v.SetDefault("telemetry.insecure", defaults.Telemetry.Insecure)
	v.SetDefault("telemetry.sample_rate", defaults.Telemetry.SampleRate)
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("metrics.textfile", defaults.Metrics.Textfile)
	v.SetDefault("http.timeout", defaults.HTTP.Timeout)
	v.SetDefault("http.user_agent", defaults.HTTP.UserAgent)
	v.SetDefault("http.max_response_size", defaults.HTTP.MaxResponseSize)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.color", defaults.Output.Color)
	for name, svc := range defaults.Services {
		v.SetDefault("services."+name+".url", svc.URL)
	}

	v.SetEnvPrefix("RINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Use default location: $XDG_CONFIG_HOME/ringoctl/config.{yaml,toml}
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// durationDecodeHook returns a mapstructure decode hook that converts strings
// to time.Duration. This enables config files to use human-readable durations
// like "30s", "5m", "1h".
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			// Assume nanoseconds for raw integers
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			// YAML often deserializes numbers as float64
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ringoctl")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "ringoctl")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
