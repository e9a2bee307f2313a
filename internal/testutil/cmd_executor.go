// Package testutil provides testing utilities for wifikeys.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	pkgexec "github.com/systmms/wifikeys/pkg/exec"
)

// MockCommandExecutor provides a configurable mock for the netsh seam.
type MockCommandExecutor struct {
	mu sync.Mutex

	// Responses maps command patterns to their mock responses.
	// Key format: "command arg1 arg2" (space-separated command and args)
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching pattern is found.
	DefaultResponse *MockResponse

	// RecordedCalls stores all calls made to Execute for verification.
	RecordedCalls []RecordedCall

	// StrictMode causes Execute to fail if no matching response is found.
	StrictMode bool
}

// MockResponse defines the expected output for a mocked command.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
	// Delay holds the response back, honouring context cancellation.
	Delay time.Duration
}

// RecordedCall stores information about a command execution.
type RecordedCall struct {
	Command string
	Args    []string
	Context context.Context
}

var _ pkgexec.CommandExecutor = (*MockCommandExecutor)(nil)

// NewMockCommandExecutor creates a new mock executor with empty responses.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Responses:     make(map[string]MockResponse),
		RecordedCalls: make([]RecordedCall, 0),
	}
}

// Execute returns the mocked response for the given command.
func (m *MockCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.mu.Lock()
	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{
		Command: name,
		Args:    args,
		Context: ctx,
	})
	resp, ok := m.lookup(pkgexec.CommandLine(name, args...))
	strict := m.StrictMode
	m.mu.Unlock()

	if !ok {
		if strict {
			return nil, nil, fmt.Errorf("mock: no response configured for command: %s", pkgexec.CommandLine(name, args...))
		}
		return []byte{}, []byte{}, nil
	}

	if resp.Delay > 0 {
		timer := time.NewTimer(resp.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	// Callers may wipe returned buffers, so hand out copies.
	return append([]byte{}, resp.Stdout...), append([]byte{}, resp.Stderr...), resp.Err
}

// lookup prefers an exact key, then the longest pattern that is a
// word-aligned prefix of key, then the default response.
func (m *MockCommandExecutor) lookup(key string) (MockResponse, bool) {
	if resp, ok := m.Responses[key]; ok {
		return resp, true
	}

	best := ""
	for pattern := range m.Responses {
		if matchesPattern(key, pattern) && len(pattern) > len(best) {
			best = pattern
		}
	}
	if best != "" {
		return m.Responses[best], true
	}

	if m.DefaultResponse != nil {
		return *m.DefaultResponse, true
	}
	return MockResponse{}, false
}

func matchesPattern(key, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(key, prefix)
	}
	return strings.HasPrefix(key, pattern+" ")
}

// AddResponse registers a mock response for a specific command pattern.
func (m *MockCommandExecutor) AddResponse(commandPattern string, response MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[commandPattern] = response
}

// AddOutput registers a successful response with the given stdout.
func (m *MockCommandExecutor) AddOutput(commandPattern string, stdout string) {
	m.AddResponse(commandPattern, MockResponse{Stdout: []byte(stdout)})
}

// AddErrorResponse adds a failing response. netsh prints its diagnostics on
// stdout, so errMsg is returned there.
func (m *MockCommandExecutor) AddErrorResponse(commandPattern string, errMsg string, exitCode int) {
	m.AddResponse(commandPattern, MockResponse{
		Stdout: []byte(errMsg),
		Stderr: []byte{},
		Err:    fmt.Errorf("exit status %d", exitCode),
	})
}

// GetCalls returns all recorded calls whose command line starts with prefix.
func (m *MockCommandExecutor) GetCalls(prefix string) []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []RecordedCall
	for _, call := range m.RecordedCalls {
		if strings.HasPrefix(pkgexec.CommandLine(call.Command, call.Args...), prefix) {
			matches = append(matches, call)
		}
	}
	return matches
}

// CallCount returns the number of times Execute was called.
func (m *MockCommandExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecordedCalls)
}
