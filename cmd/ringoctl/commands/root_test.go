package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
	"github.com/marmos91/ringoctl/pkg/config"
	"github.com/marmos91/ringoctl/pkg/metrics"
)

// testConfig returns a configuration pointing the users service at url.
func testConfig(url string) *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Services[config.DefaultUsersService] = config.ServiceConfig{URL: url}
	cfg.Output.Color = "never"
	return cfg
}

// execute runs the command tree with args and returns everything written to
// stdout and stderr.
func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	saved := *cmdutil.Flags
	t.Cleanup(func() { *cmdutil.Flags = saved })

	var out bytes.Buffer
	root := NewRootCmd(cfg)
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	t.Cleanup(func() { _ = runCleanups(t.Context()) })
	return out.String(), err
}

// writeFile writes content to a file in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no command", args: nil, wantErr: "missing command"},
		{name: "unknown command", args: []string{"bogus"}, wantErr: `unknown command "bogus"`},
		{name: "missing service", args: []string{"crud"}, wantErr: "missing service (registered: users)"},
		{name: "invalid service", args: []string{"crud", "orders", "read", "1"}, wantErr: `invalid service "orders" (registered: users)`},
		{name: "missing verb", args: []string{"crud", "users"}, wantErr: "missing command"},
		{name: "unknown verb", args: []string{"crud", "users", "list"}, wantErr: `unknown command "list"`},
		{name: "missing file", args: []string{"crud", "users", "create"}, wantErr: "missing required argument: <file>"},
		{name: "missing id", args: []string{"crud", "users", "read"}, wantErr: "missing required argument: <id>"},
		{name: "non-integer id", args: []string{"crud", "users", "read", "abc"}, wantErr: `invalid value "abc" for <id>`},
		{name: "non-integer delete id", args: []string{"crud", "users", "delete", "x1"}, wantErr: `invalid value "x1" for <id>`},
		{name: "extra argument", args: []string{"crud", "users", "read", "1", "2"}, wantErr: `unexpected argument "2"`},
		{name: "unknown flag", args: []string{"crud", "users", "search", "--bogus"}, wantErr: "unknown flag: --bogus"},
		{name: "malformed flag value", args: []string{"crud", "users", "search", "--limit", "ten"}, wantErr: "invalid argument"},
		{name: "search takes no argument", args: []string{"crud", "users", "search", "ali"}, wantErr: `unexpected argument "ali"`},
		{name: "invalid output format", args: []string{"-o", "xml", "crud", "users", "search"}, wantErr: "invalid output format"},
		{name: "negative timeout", args: []string{"--timeout", "-1s", "crud", "users", "search"}, wantErr: "must not be negative"},
		{name: "admin without verb", args: []string{"admin"}, wantErr: "missing command (available: passwd)"},
		{name: "passwd without id", args: []string{"admin", "passwd"}, wantErr: "missing required argument: <id>"},
		{name: "passwd conflicting flags", args: []string{"admin", "passwd", "1", "--password", "x", "-i"}, wantErr: "mutually exclusive"},
		{name: "completion unknown shell", args: []string{"completion", "tcsh"}, wantErr: `unsupported shell "tcsh"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFake(t)

			_, err := execute(t, testConfig(fake.URL), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, cmdutil.ExitUsage, cmdutil.ExitCode(err))
			assert.Empty(t, fake.Requests(), "usage errors must not send requests")
		})
	}
}

func TestUsageHintNamesCommand(t *testing.T) {
	_, err := execute(t, testConfig("http://127.0.0.1:1"), "crud", "users", "read", "abc")
	require.Error(t, err)
	assert.Equal(t, "Run 'ringoctl crud users read --help' for usage.", cmdutil.UsageHint(err))
}

func TestVersion(t *testing.T) {
	Version = "1.2.3"
	t.Cleanup(func() { Version = "dev" })

	out, err := execute(t, testConfig("http://127.0.0.1:1"), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = execute(t, testConfig("http://127.0.0.1:1"), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ringoctl 1.2.3")
	assert.Contains(t, out, "Go version:")
}

func TestCompletion(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, testConfig("http://127.0.0.1:1"), "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "ringoctl")
		})
	}
}

func TestGlobalFlagsSynced(t *testing.T) {
	fake := newFake(t)

	_, err := execute(t, testConfig(fake.URL), "--no-color", "-v", "--timeout", "3s", "-o", "yaml", "crud", "users", "search")
	require.NoError(t, err)

	assert.True(t, cmdutil.Flags.NoColor)
	assert.True(t, cmdutil.Flags.Verbose)
	assert.Equal(t, "3s", cmdutil.Flags.Timeout.String())
	assert.Equal(t, "yaml", cmdutil.Flags.Output)
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "absent", args: []string{"crud", "users", "read", "1"}, want: ""},
		{name: "separate value", args: []string{"--config", "/tmp/a.yaml", "crud", "users"}, want: "/tmp/a.yaml"},
		{name: "inline value", args: []string{"crud", "--config=/tmp/b.yaml", "users"}, want: "/tmp/b.yaml"},
		{name: "among unknown flags", args: []string{"-o", "json", "--no-color", "--config", "c.yaml", "crud"}, want: "c.yaml"},
		{name: "with help", args: []string{"--help", "--config", "d.yaml"}, want: "d.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configPathFromArgs(tt.args))
		})
	}
}

func TestMetricsTextfileWrittenOnExit(t *testing.T) {
	fake := newFake(t)
	fake.Seed("users", "1", map[string]any{"name": "ann"})

	t.Cleanup(metrics.Reset)

	cfg := testConfig(fake.URL)
	cfg.Metrics.Enabled = true
	cfg.Metrics.Textfile = filepath.Join(t.TempDir(), "ringoctl.prom")

	_, err := execute(t, cfg, "crud", "users", "read", "1")
	require.NoError(t, err)
	require.NoError(t, runCleanups(t.Context()))

	data, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ringoctl_api_requests_total{code="200",method="get"} 1`)
}
