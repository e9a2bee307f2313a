package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/export"
	"github.com/systmms/wifikeys/internal/logging"
	"github.com/systmms/wifikeys/internal/wlan"
	pkgexec "github.com/systmms/wifikeys/pkg/exec"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "wifikeys.yaml"

//go:embed schema.json
var schemaJSON []byte

// Config holds the runtime configuration
type Config struct {
	Path       string
	Explicit   bool // Path was given on the command line; a missing file is an error
	Logger     *logging.Logger
	MetricsOut string
	Executor   pkgexec.CommandExecutor // nil means the real executor
	Definition *Definition
}

// Definition represents the wifikeys.yaml structure
type Definition struct {
	Version     int          `yaml:"version"`
	Command     string       `yaml:"command,omitempty"`
	TimeoutMs   int          `yaml:"timeout_ms,omitempty"`
	Concurrency int          `yaml:"concurrency,omitempty"`
	Markers     wlan.Markers `yaml:"markers,omitempty"`
	Encoding    string       `yaml:"encoding,omitempty"`
	QR          QRConfig     `yaml:"qr,omitempty"`
}

// QRConfig holds the QR code export defaults
type QRConfig struct {
	Path string `yaml:"path,omitempty"`
	Size int    `yaml:"size,omitempty"`
}

// Load reads and validates the configuration file. A missing file at the
// default path leaves every setting at its default.
func (c *Config) Load() error {
	if c.Path == "" {
		c.Path = DefaultPath
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) && !c.Explicit {
			c.logger().Debug("No configuration file at %s, using defaults", c.Path)
			c.Definition = &Definition{}
			return nil
		}
		if os.IsNotExist(err) {
			return dserrors.ConfigError{
				Field:      "path",
				Value:      c.Path,
				Message:    "configuration file not found",
				Suggestion: "Check the --config path or omit the flag to use built-in defaults",
			}
		}
		return dserrors.UserError{
			Message:    "Failed to read configuration file",
			Details:    err.Error(),
			Suggestion: "Check file permissions and path",
			Err:        err,
		}
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return dserrors.ConfigError{
			Message:    "invalid YAML syntax in configuration file",
			Suggestion: "Check for indentation errors, missing quotes, or invalid characters. Use a YAML validator",
		}
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	if v, ok := raw["version"]; ok {
		if n, isInt := v.(int); !isInt || n != 0 {
			return dserrors.ConfigError{
				Field:      "version",
				Value:      v,
				Message:    "unsupported configuration version",
				Suggestion: "Set 'version: 0' at the top of your wifikeys.yaml file",
			}
		}
	}

	if err := validate(raw); err != nil {
		return err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return dserrors.ConfigError{
			Message:    "invalid configuration structure",
			Suggestion: "Compare your file against the documented wifikeys.yaml layout",
		}
	}

	c.logger().Debug("Loaded configuration from %s", c.Path)
	c.Definition = &def
	return nil
}

func validate(raw map[string]interface{}) error {
	doc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	field := ""
	for _, desc := range result.Errors() {
		if field == "" {
			field = desc.Field()
		}
		problems = append(problems, desc.String())
	}
	return dserrors.ConfigError{
		Field:      field,
		Message:    "schema validation failed:\n  - " + strings.Join(problems, "\n  - "),
		Suggestion: "Fix the listed fields in your wifikeys.yaml file",
	}
}

func (c *Config) logger() *logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func (c *Config) definition() *Definition {
	if c.Definition == nil {
		return &Definition{}
	}
	return c.Definition
}

// NetshConfig returns the source settings; zero values fall back to the
// source defaults.
func (c *Config) NetshConfig() wlan.NetshConfig {
	def := c.definition()
	nc := wlan.NetshConfig{
		Command:  def.Command,
		Markers:  def.Markers,
		Encoding: def.Encoding,
	}
	if def.TimeoutMs > 0 {
		nc.Timeout = time.Duration(def.TimeoutMs) * time.Millisecond
	}
	return nc
}

// Concurrency returns the fetch pool size, at least 1.
func (c *Config) Concurrency() int {
	if n := c.definition().Concurrency; n > 1 {
		return n
	}
	return 1
}

// QRPath returns the default QR image path.
func (c *Config) QRPath() string {
	if p := c.definition().QR.Path; p != "" {
		return p
	}
	return export.DefaultQRFilename
}

// QRSize returns the default QR image edge length in pixels.
func (c *Config) QRSize() int {
	if s := c.definition().QR.Size; s > 0 {
		return s
	}
	return export.DefaultQRSize
}

// CommandExecutor returns the executor used for netsh invocations.
func (c *Config) CommandExecutor() pkgexec.CommandExecutor {
	if c.Executor != nil {
		return c.Executor
	}
	return pkgexec.DefaultExecutor()
}
