package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	"github.com/systmms/wifikeys/internal/logging"
	"github.com/systmms/wifikeys/internal/testutil"
)

// newTestConfig returns a config with no file on disk and netsh mocked.
func newTestConfig(t *testing.T, mockExec *testutil.MockCommandExecutor) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Path:   filepath.Join(t.TempDir(), "wifikeys.yaml"),
		Logger: logging.Discard(),
	}
	if mockExec != nil {
		cfg.Executor = mockExec
	}
	return cfg
}

// newHomeExecutor mocks a host with one keyed, one open and one unreadable profile.
func newHomeExecutor() *testutil.MockCommandExecutor {
	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddOutput("netsh wlan show profiles", testutil.NetshProfilesOutput("HomeNet", "Cafe", "Office"))
	mockExec.AddOutput("netsh wlan show profile HomeNet key=clear", testutil.NetshProfileOutput("HomeNet", "hunter2:abc"))
	mockExec.AddOutput("netsh wlan show profile Cafe key=clear", testutil.NetshProfileOutput("Cafe", ""))
	mockExec.AddErrorResponse("netsh wlan show profile Office key=clear",
		"The requested operation requires elevation (Run as administrator).\r\n", 1)
	return mockExec
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	// Standalone subcommands do not inherit the root's silencing.
	cmd.SilenceUsage = true
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
