// Package export renders a CredentialSet into the file formats wifikeys
// writes. Every renderer is a pure function of the set and leaves it
// untouched.
//
// Exported files collapse the credential variants to text: a missing key
// becomes "No password found" and a failed fetch becomes "Error: <reason>".
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/systmms/wifikeys/internal/wlan"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"WiFi Name", "Password"}

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported file formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatText, FormatYAML}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat infers the format from a file extension.
func DetectFormat(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

// DefaultFilename is the file written when no path is given.
func DefaultFilename(f Format) string {
	switch f {
	case FormatText:
		return "wifi_passwords.txt"
	default:
		return "wifi_passwords." + string(f)
	}
}

// Render encodes set in format f.
func Render(f Format, set *wlan.CredentialSet) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(set)
	case FormatCSV:
		return CSV(set)
	case FormatText:
		return []byte(Text(set)), nil
	case FormatYAML:
		return YAML(set)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// JSON renders an object keyed by profile name with four-space indentation.
// Key order is not significant.
func JSON(set *wlan.CredentialSet) ([]byte, error) {
	data := make(map[string]string, set.Len())
	for _, e := range set.Entries() {
		data[string(e.Profile)] = e.Credential.Text()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// CSV renders a header row followed by one row per profile in set order.
func CSV(set *wlan.CredentialSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, e := range set.Entries() {
		if err := w.Write([]string{string(e.Profile), e.Credential.Text()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Text renders "name: value" lines in set order.
func Text(set *wlan.CredentialSet) string {
	var b strings.Builder
	for _, e := range set.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", e.Profile, e.Credential.Text())
	}
	return b.String()
}

// YAML renders a mapping that keeps set order.
func YAML(set *wlan.CredentialSet) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range set.Entries() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(e.Profile)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Credential.Text()},
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return out, nil
}
