package commands

import (
	"os"
	"path/filepath"
	osExec "os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/wifikeys/internal/testutil"
)

func TestDoctorCommand_Healthy(t *testing.T) {
	t.Parallel()

	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddOutput("netsh wlan show profiles", testutil.NetshProfilesOutput("HomeNet", "Cafe"))
	mockExec.AddOutput("netsh wlan show profile HomeNet key=clear", testutil.NetshProfileOutput("HomeNet", "hunter22"))

	output, err := executeCommand(NewDoctorCommand(newTestConfig(t, mockExec)))
	require.NoError(t, err)

	assert.Contains(t, output, "CHECK")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "using built-in defaults")
	assert.Contains(t, output, "2 profile(s) via netsh")
	assert.Contains(t, output, `key readable for "HomeNet"`)
	assert.Contains(t, output, "Summary: 3/3 checks passed")
	assert.NotContains(t, output, "hunter22")

	assert.Len(t, mockExec.GetCalls("netsh wlan show profile HomeNet"), 1, "only the first profile is probed")
	assert.Empty(t, mockExec.GetCalls("netsh wlan show profile Cafe"))
}

func TestDoctorCommand_NetshMissing(t *testing.T) {
	t.Parallel()

	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddResponse("netsh wlan show profiles", testutil.MockResponse{
		Err: &osExec.Error{Name: "netsh", Err: osExec.ErrNotFound},
	})

	output, err := executeCommand(NewDoctorCommand(newTestConfig(t, mockExec)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 check(s) failed")

	assert.Contains(t, output, "✗ error")
	assert.Contains(t, output, "command not found")
	assert.Contains(t, output, "netsh ships with Windows")
}

func TestDoctorCommand_ElevationRequired(t *testing.T) {
	t.Parallel()

	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddOutput("netsh wlan show profiles", testutil.NetshProfilesOutput("Office"))
	mockExec.AddErrorResponse("netsh wlan show profile Office key=clear",
		"The requested operation requires elevation (Run as administrator).\r\n", 1)

	output, err := executeCommand(NewDoctorCommand(newTestConfig(t, mockExec)))
	require.Error(t, err)
	assert.Contains(t, output, "key access")
	assert.Contains(t, output, "Summary: 2/3 checks passed")
}

func TestDoctorCommand_NoProfilesIsWarning(t *testing.T) {
	t.Parallel()

	mockExec := testutil.NewMockCommandExecutor()
	mockExec.AddOutput("netsh wlan show profiles", testutil.NetshProfilesOutput())

	output, err := executeCommand(NewDoctorCommand(newTestConfig(t, mockExec)))
	require.NoError(t, err)
	assert.Contains(t, output, "⚠ warning")
	assert.Contains(t, output, "no saved profiles")
}

func TestDoctorCommand_BadConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "wifikeys.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("concurrency: -1\n"), 0644))

	mockExec := testutil.NewMockCommandExecutor()
	cfg := newTestConfig(t, mockExec)
	cfg.Path = cfgPath
	cfg.Explicit = true

	output, err := executeCommand(NewDoctorCommand(cfg))
	require.Error(t, err)
	assert.Contains(t, output, "configuration")
	assert.Contains(t, output, "schema validation failed")
	assert.Equal(t, 0, mockExec.CallCount())
}
