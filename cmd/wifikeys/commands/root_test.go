package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/wifikeys/internal/config"
	"github.com/systmms/wifikeys/internal/testutil"
)

func newTestRoot(mockExec *testutil.MockCommandExecutor) (*config.Config, BuildInfo) {
	cfg := &config.Config{}
	if mockExec != nil {
		cfg.Executor = mockExec
	}
	return cfg, BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cfg, info := newTestRoot(nil)
	root := NewRootCommand(cfg, info)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"show", "profiles", "export", "qr", "doctor", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	t.Parallel()

	cfg, info := newTestRoot(nil)
	output, err := executeCommand(NewRootCommand(cfg, info), "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "1.2.3 (commit: abc123, built: 2026-01-01)")
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 0\nconcurrency: 3\n"), 0644))
	metricsPath := filepath.Join(dir, "run.prom")

	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddOutput("netsh wlan show profiles", testutil.NetshProfilesOutput("HomeNet"))

	cfg, info := newTestRoot(mockExec)
	output, err := executeCommand(NewRootCommand(cfg, info),
		"--config", cfgPath, "--no-color", "--metrics-out", metricsPath, "profiles")
	require.NoError(t, err)

	assert.Equal(t, "HomeNet\n", output)
	assert.Equal(t, cfgPath, cfg.Path)
	assert.True(t, cfg.Explicit)
	assert.Equal(t, 3, cfg.Concurrency())
	assert.FileExists(t, metricsPath)
}

func TestRootCommand_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	cfg, info := newTestRoot(testutil.NewMockCommandExecutor())
	_, err := executeCommand(NewRootCommand(cfg, info),
		"--config", filepath.Join(t.TempDir(), "missing.yaml"), "profiles")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestRootCommand_DefaultConfigPath(t *testing.T) {
	t.Parallel()

	cfg, info := newTestRoot(testutil.NewMockCommandExecutor())
	_, _ = executeCommand(NewRootCommand(cfg, info), "completion", "bash")

	assert.Equal(t, config.DefaultPath, cfg.Path)
	assert.False(t, cfg.Explicit)
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		cfg, info := newTestRoot(nil)
		output, err := executeCommand(NewRootCommand(cfg, info), "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, output, "wifikeys", shell)
	}

	cfg, info := newTestRoot(nil)
	_, err := executeCommand(NewRootCommand(cfg, info), "completion", "tcsh")
	assert.Error(t, err)
}
