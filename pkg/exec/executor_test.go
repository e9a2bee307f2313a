package exec

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommandExecutor_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX echo")
	}
	t.Parallel()

	tests := []struct {
		name        string
		command     string
		args        []string
		wantSuccess bool
		wantOutput  string
	}{
		{
			name:        "echo command",
			command:     "echo",
			args:        []string{"hello"},
			wantSuccess: true,
			wantOutput:  "hello\n",
		},
		{
			name:        "argument with spaces stays one argument",
			command:     "echo",
			args:        []string{"Home Network"},
			wantSuccess: true,
			wantOutput:  "Home Network\n",
		},
		{
			name:        "invalid command",
			command:     "nonexistent_command_xyz123",
			args:        []string{},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			executor := &RealCommandExecutor{}
			stdout, _, err := executor.Execute(context.Background(), tt.command, tt.args...)

			if tt.wantSuccess {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutput, string(stdout))
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRealCommandExecutor_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sleep")
	}
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := DefaultExecutor().Execute(ctx, "sleep", "5")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "netsh", CommandLine("netsh"))
	assert.Equal(t, "netsh wlan show profiles", CommandLine("netsh", "wlan", "show", "profiles"))
}
