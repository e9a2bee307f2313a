package wlan

import (
	"strings"
)

// Markers are the label substrings that identify the interesting lines of
// netsh output. netsh localises its labels, so they are configurable.
type Markers struct {
	Profile []string `yaml:"profile,omitempty"`
	Secret  []string `yaml:"secret,omitempty"`
}

// DefaultMarkers returns the labels printed by an English Windows install.
func DefaultMarkers() Markers {
	return Markers{
		Profile: []string{"All User Profile"},
		Secret:  []string{"Key Content"},
	}
}

// ParseProfiles extracts profile names from `netsh wlan show profiles`
// output in encounter order. A line is a profile entry when the text before
// its first colon contains one of markers; the name is everything after that
// colon, trimmed. No matching lines yields an empty, non-nil slice.
func ParseProfiles(output string, markers []string) []ProfileName {
	profiles := make([]ProfileName, 0)
	for _, line := range splitLines(output) {
		value, ok := labelledValue(line, markers)
		if !ok {
			continue
		}
		profiles = append(profiles, ProfileName(value))
	}
	return profiles
}

// ParseSecret extracts the key from `netsh wlan show profile <name>
// key=clear` output. Only the first colon splits the line, so keys that
// contain colons survive intact. The boolean is false when no line carries a
// secret marker.
func ParseSecret(output string, markers []string) (string, bool) {
	for _, line := range splitLines(output) {
		if value, ok := labelledValue(line, markers); ok {
			return value, true
		}
	}
	return "", false
}

// labelledValue splits "label : value" on the first colon and reports the
// trimmed value when label contains any of markers.
func labelledValue(line string, markers []string) (string, bool) {
	label, value, found := strings.Cut(line, ":")
	if !found || !containsAny(label, markers) {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func splitLines(output string) []string {
	return strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
}
