package logging

import (
	"bytes"
	"fmt"
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "wifi key is redacted",
			input:    "correct-horse-battery",
			expected: "[REDACTED]",
		},
		{
			name:     "empty secret is still redacted",
			input:    "",
			expected: "[REDACTED]",
		},
		{
			name:     "key with colon is redacted",
			input:    "abc:def",
			expected: "[REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Secret(tt.input).String()
			if result != tt.expected {
				t.Errorf("Secret(%q).String() = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSecretGoString(t *testing.T) {
	got := fmt.Sprintf("%#v", Secret("hunter22"))
	if got != "[REDACTED]" {
		t.Errorf("Expected [REDACTED] for %%#v, got %s", got)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, true, true)

	logger.Info("info %s", "message")
	logger.Warn("warn message")
	logger.Error("error message")
	logger.Debug("debug message")

	want := "✓ info message\n⚠ warn message\n✗ error message\n[DEBUG] debug message\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestLoggerDebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false, true)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output written with debug disabled: %q", buf.String())
	}
	if logger.DebugEnabled() {
		t.Error("DebugEnabled() = true, want false")
	}
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false, false)

	logger.Warn("careful")
	if !bytes.Contains(buf.Bytes(), []byte("\033[33m")) {
		t.Errorf("expected ANSI colour sequence, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("goes nowhere")
}

func TestRedactFunction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		secrets  []string
		expected string
	}{
		{
			name:     "single secret redacted",
			input:    "HomeNet: secret123",
			secrets:  []string{"secret123"},
			expected: "HomeNet: [REDACTED]",
		},
		{
			name:     "multiple secrets redacted",
			input:    "Home: alpha-key Office: beta-key",
			secrets:  []string{"alpha-key", "beta-key"},
			expected: "Home: [REDACTED] Office: [REDACTED]",
		},
		{
			name:     "no secrets to redact",
			input:    "This has no secrets",
			secrets:  []string{},
			expected: "This has no secrets",
		},
		{
			name:     "empty secret ignored",
			input:    "This has no secrets",
			secrets:  []string{""},
			expected: "This has no secrets",
		},
		{
			name:     "short secret ignored",
			input:    "Short secret: ab",
			secrets:  []string{"ab"},
			expected: "Short secret: ab", // Too short to redact
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Redact(tt.input, tt.secrets)
			if result != tt.expected {
				t.Errorf("Redact() = %q, want %q", result, tt.expected)
			}
		})
	}
}
