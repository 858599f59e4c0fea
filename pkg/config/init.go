package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# ringoctl Configuration File
#
# Values can be overridden with RINGO_* environment variables, e.g.
#   RINGO_SERVICES_USERS_URL=http://users.internal:5000
#   RINGO_LOGGING_LEVEL=DEBUG

logging:
  level: INFO        # DEBUG, INFO, WARN, ERROR
  format: text       # text, json
  output: stderr     # stdout, stderr, or a file path

telemetry:
  enabled: false
  endpoint: localhost:4317
  insecure: true
  sample_rate: 1.0

metrics:
  enabled: false
  textfile: ""       # e.g. /var/lib/node_exporter/textfile/ringoctl.prom

http:
  timeout: 0s        # 0 disables the timeout
  user_agent: ringoctl
  max_response_size: 0  # 0 disables the cap, e.g. 10MiB

output:
  format: json       # json, yaml, table
  color: auto        # auto, always, never

# Service registry: service name -> base URL.
# Requests go to <url>/<service>[/<id>].
services:
  users:
    url: http://0.0.0.0:5000
`

// InitConfig writes the default configuration file to the default location.
// It refuses to overwrite an existing file unless force is set.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes the default configuration file to path.
func InitConfigToPath(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
