package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marmos91/ringoctl/internal/bytesize"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultConfig(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "debug"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got %q", cfg.Logging.Output)
	}
	if got := cfg.Services["users"].URL; got != DefaultUsersURL {
		t.Errorf("Expected users service at %q, got %q", DefaultUsersURL, got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	nonExistentPath := filepath.Join(t.TempDir(), "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}

	if len(cfg.Services) != 1 {
		t.Fatalf("Expected exactly one registered service, got %d", len(cfg.Services))
	}
	if cfg.HTTP.Timeout != 0 {
		t.Errorf("Expected no default timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected default output format 'json', got %q", cfg.Output.Format)
	}
}

func TestLoad_AdditionalServices(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
services:
  groups:
    url: http://groups.internal:6000/
http:
  timeout: 15s
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	names := cfg.ServiceNames()
	if len(names) != 2 || names[0] != "groups" || names[1] != "users" {
		t.Fatalf("Expected services [groups users], got %v", names)
	}

	url, err := cfg.ServiceURL("groups")
	if err != nil {
		t.Fatalf("ServiceURL failed: %v", err)
	}
	if url != "http://groups.internal:6000" {
		t.Errorf("Expected trailing slash to be stripped, got %q", url)
	}
	if cfg.HTTP.Timeout != 15*time.Second {
		t.Errorf("Expected timeout 15s, got %v", cfg.HTTP.Timeout)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid.yaml", `
logging:
  level: INFO
  invalid yaml here [[[
`)

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_InvalidServiceURL(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
services:
  users:
    url: "not a url"
`)

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected validation error for invalid service URL")
	}
}

func TestLoad_TOML(t *testing.T) {
	configPath := writeConfig(t, "config.toml", `
[logging]
level = "WARN"
format = "json"

[services.users]
url = "http://localhost:5001"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if got := cfg.Services["users"].URL; got != "http://localhost:5001" {
		t.Errorf("Expected users URL from TOML, got %q", got)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("RINGO_SERVICES_USERS_URL", "http://users.internal:5000")
	t.Setenv("RINGO_LOGGING_LEVEL", "ERROR")
	t.Setenv("RINGO_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := cfg.Services["users"].URL; got != "http://users.internal:5000" {
		t.Errorf("Expected env override for users URL, got %q", got)
	}
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected env override for log level, got %q", cfg.Logging.Level)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected env override for output format, got %q", cfg.Output.Format)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
services:
  users:
    url: http://from-file:5000
`)
	t.Setenv("RINGO_SERVICES_USERS_URL", "http://from-env:5000")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if got := cfg.Services["users"].URL; got != "http://from-env:5000" {
		t.Errorf("Expected environment to win over file, got %q", got)
	}
}

func TestServiceURL_Unknown(t *testing.T) {
	cfg := GetDefaultConfig()

	_, err := cfg.ServiceURL("orders")
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("Expected ErrUnknownService, got %v", err)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := GetDefaultConfigPath(); got != filepath.Join("/tmp/xdg", "ringoctl", "config.yaml") {
		t.Errorf("Unexpected default config path %q", got)
	}
}

func TestLoad_MaxResponseSize(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
http:
  max_response_size: 512KiB
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.HTTP.MaxResponseSize != 512*bytesize.KiB {
		t.Errorf("Expected 512KiB, got %s", cfg.HTTP.MaxResponseSize)
	}

	t.Setenv("RINGO_HTTP_MAX_RESPONSE_SIZE", "2MB")
	cfg, err = Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.HTTP.MaxResponseSize != 2*bytesize.MB {
		t.Errorf("Expected env override of 2MB, got %s", cfg.HTTP.MaxResponseSize)
	}
}

func TestLoad_MaxResponseSizeDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.HTTP.MaxResponseSize != 0 {
		t.Errorf("Expected no response cap by default, got %s", cfg.HTTP.MaxResponseSize)
	}
}
