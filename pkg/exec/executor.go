// Package exec isolates subprocess invocation behind an interface so the
// text parsers that consume netsh output can be tested without Windows.
package exec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Execute waits for output pipes to close after
// the context kills the process.
const waitDelay = 2 * time.Second

// CommandExecutor runs one external command to completion.
type CommandExecutor interface {
	// Execute runs a command with the given context and arguments.
	// Returns stdout, stderr, and any error that occurred.
	Execute(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// RealCommandExecutor executes actual commands using os/exec.
type RealCommandExecutor struct{}

// Execute runs an actual command. Cancelling ctx kills the process.
func (r *RealCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return stdout.Bytes(), stderr.Bytes(), ctxErr
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// DefaultExecutor returns the standard production executor.
func DefaultExecutor() CommandExecutor {
	return &RealCommandExecutor{}
}

// CommandLine renders name and args the way they appear in error messages
// and mock lookup keys.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
