package wlan

import (
	"context"
	"errors"
	"strings"
	"time"

	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/logging"
	"github.com/systmms/wifikeys/internal/secure"
	pkgexec "github.com/systmms/wifikeys/pkg/exec"
)

const (
	// DefaultCommand is the Windows network configuration tool.
	DefaultCommand = "netsh"
	// DefaultTimeout bounds a single netsh invocation.
	DefaultTimeout = 10 * time.Second
)

// NetshConfig configures a NetshSource.
type NetshConfig struct {
	Command string        // executable name or path (default: netsh)
	Timeout time.Duration // per-invocation deadline (default: 10s, negative disables)
	Markers Markers       // output labels (default: English)
	// Encoding names the code page netsh writes in (default: auto).
	Encoding string
}

// NetshSource implements Source on top of `netsh wlan`.
type NetshSource struct {
	config   NetshConfig
	logger   *logging.Logger
	executor pkgexec.CommandExecutor
}

var _ Source = (*NetshSource)(nil)

// NewNetshSource creates a source that runs the real netsh binary.
func NewNetshSource(config NetshConfig, logger *logging.Logger) *NetshSource {
	return NewNetshSourceWithExecutor(config, logger, pkgexec.DefaultExecutor())
}

// NewNetshSourceWithExecutor creates a source with a custom executor.
// This is primarily for testing, allowing command execution to be mocked.
func NewNetshSourceWithExecutor(config NetshConfig, logger *logging.Logger, executor pkgexec.CommandExecutor) *NetshSource {
	if config.Command == "" {
		config.Command = DefaultCommand
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	defaults := DefaultMarkers()
	if len(config.Markers.Profile) == 0 {
		config.Markers.Profile = defaults.Profile
	}
	if len(config.Markers.Secret) == 0 {
		config.Markers.Secret = defaults.Secret
	}
	if config.Encoding == "" {
		config.Encoding = EncodingAuto
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &NetshSource{
		config:   config,
		logger:   logger,
		executor: executor,
	}
}

// Command returns the configured executable.
func (s *NetshSource) Command() string {
	return s.config.Command
}

// ListProfiles runs `netsh wlan show profiles`.
func (s *NetshSource) ListProfiles(ctx context.Context) ([]ProfileName, error) {
	stdout, err := s.run(ctx, "wlan", "show", "profiles")
	if err != nil {
		return nil, &ListError{Err: err}
	}
	defer secure.Wipe(stdout)

	output, err := decodeOutput(stdout, s.config.Encoding)
	if err != nil {
		return nil, &ListError{Err: err}
	}

	profiles := ParseProfiles(output, s.config.Markers.Profile)
	s.logger.Debug("Found %d saved profiles", len(profiles))
	return profiles, nil
}

// FetchSecret runs `netsh wlan show profile <name> key=clear`.
func (s *NetshSource) FetchSecret(ctx context.Context, name ProfileName) Credential {
	stdout, err := s.run(ctx, "wlan", "show", "profile", string(name), "key=clear")
	if err != nil {
		return ErrorCredential(err)
	}
	defer secure.Wipe(stdout)

	output, err := decodeOutput(stdout, s.config.Encoding)
	if err != nil {
		return ErrorCredential(err)
	}

	secret, ok := ParseSecret(output, s.config.Markers.Secret)
	if !ok {
		if s.logger.DebugEnabled() {
			s.logger.Debug("Profile %q has no line labelled %v; labels seen: %s",
				name, s.config.Markers.Secret, strings.Join(outputLabels(output), ", "))
		}
		return NoSecretCredential()
	}
	if s.logger.DebugEnabled() {
		s.logger.Debug("Read key for profile %q from:\n%s", name, logging.Redact(output, []string{secret}))
	}
	return SecretCredential(secret)
}

// run executes one netsh invocation under the configured deadline.
func (s *NetshSource) run(ctx context.Context, args ...string) ([]byte, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	line := pkgexec.CommandLine(s.config.Command, args...)
	s.logger.Debug("Running %s", line)

	stdout, stderr, err := s.executor.Execute(ctx, s.config.Command, args...)
	if err == nil {
		return stdout, nil
	}
	defer secure.Wipe(stdout)

	if dserrors.IsTimeout(err) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, dserrors.TimeoutError(line, int(s.config.Timeout/time.Millisecond))
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}

	output := string(stderr)
	if strings.TrimSpace(output) == "" {
		output = string(stdout)
	}
	return nil, dserrors.NewCommandError(line, err, output)
}

// outputLabels returns the label of every "label : value" line. Values are
// left out because an unrecognised label may still carry a key.
func outputLabels(output string) []string {
	var labels []string
	for _, line := range splitLines(output) {
		label, _, found := strings.Cut(line, ":")
		if label = strings.TrimSpace(label); found && label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
