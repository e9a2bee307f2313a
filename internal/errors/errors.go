package errors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// UserError represents an error that should be shown to the user with helpful context
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error with helpful context
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e ConfigError) Error() string {
	msg := "Configuration error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in field '%s'", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// CommandError represents a failed invocation of the network configuration command
type CommandError struct {
	Command    string
	ExitCode   int
	Message    string
	Suggestion string
	Err        error
}

func (e CommandError) Error() string {
	msg := fmt.Sprintf("Command '%s' failed", e.Command)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit code: %d)", e.ExitCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

func (e CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError builds a CommandError from an exec failure and the
// command's own output. netsh reports most failures on stdout, so output is
// used as the message when present.
func NewCommandError(command string, err error, output string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return WrapCommandNotFound(firstWord(command), err)
	}

	message := strings.TrimSpace(output)
	if message == "" && err != nil {
		message = err.Error()
	}

	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return CommandError{
		Command:    command,
		ExitCode:   exitCode,
		Message:    message,
		Suggestion: getCommandSuggestion(message),
		Err:        err,
	}
}

// getCommandSuggestion returns helpful suggestions based on netsh output
func getCommandSuggestion(output string) string {
	lower := strings.ToLower(output)

	switch {
	case strings.Contains(lower, "wlansvc") || strings.Contains(lower, "wireless autoconfig"):
		return "Start the WLAN AutoConfig service: 'net start wlansvc'"
	case strings.Contains(lower, "elevation") || strings.Contains(lower, "access is denied"):
		return "Re-run from an elevated (Administrator) terminal"
	case strings.Contains(lower, "is not found on the system"):
		return "List saved profiles with 'wifikeys profiles'"
	case strings.Contains(lower, "no wireless interface"):
		return "This machine has no wireless adapter, or it is disabled"
	}

	return ""
}

func firstWord(command string) string {
	if i := strings.IndexByte(command, ' '); i > 0 {
		return command[:i]
	}
	return command
}

// WrapCommandNotFound wraps command not found errors with helpful suggestions
func WrapCommandNotFound(command string, err error) error {
	suggestions := map[string]string{
		"netsh": "netsh ships with Windows; run wifikeys on a Windows host or set 'command' in wifikeys.yaml",
	}

	suggestion := suggestions[command]
	if suggestion == "" {
		suggestion = fmt.Sprintf("Make sure '%s' is installed and in your PATH", command)
	}

	return CommandError{
		Command:    command,
		Message:    "command not found",
		Suggestion: suggestion,
		Err:        err,
	}
}

// TimeoutError reports a subprocess that exceeded its deadline
func TimeoutError(command string, timeoutMs int) error {
	return UserError{
		Message:    fmt.Sprintf("Command '%s' timed out", command),
		Details:    fmt.Sprintf("Operation exceeded %dms timeout", timeoutMs),
		Suggestion: "Increase timeout_ms in wifikeys.yaml or check that the WLAN service is responsive",
		Err:        context.DeadlineExceeded,
	}
}

// IsTimeout reports whether err stems from an expired deadline
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// SimplifyError simplifies complex error messages for users
func SimplifyError(err error) error {
	if err == nil {
		return nil
	}

	// Already a user-friendly error
	var userErr UserError
	var configErr ConfigError
	var commandErr CommandError
	if errors.As(err, &userErr) || errors.As(err, &configErr) || errors.As(err, &commandErr) {
		return err
	}

	// Unwrap to get the root cause
	rootErr := err
	for {
		unwrapped := errors.Unwrap(rootErr)
		if unwrapped == nil {
			break
		}
		rootErr = unwrapped
	}

	errStr := rootErr.Error()

	if strings.Contains(errStr, "yaml:") {
		return ConfigError{
			Message:    "Invalid YAML format",
			Suggestion: "Check for indentation errors and missing quotes",
		}
	}

	if strings.Contains(errStr, "permission denied") {
		return UserError{
			Message:    "Permission denied",
			Suggestion: "Check file permissions or run with appropriate privileges",
			Err:        err,
		}
	}

	if strings.Contains(errStr, "no such file or directory") {
		return UserError{
			Message:    "File or directory not found",
			Suggestion: "Verify the path exists and is spelled correctly",
			Err:        err,
		}
	}

	// Return original error if we can't simplify it
	return err
}
