package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/export"
	"github.com/systmms/wifikeys/internal/secure"
)

func NewExportCommand(cfg *config.Config) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save WiFi keys to a JSON, CSV, text or YAML file",
		Long: `Collect every saved WiFi profile and write the result to a file.

The format defaults to the output file extension and falls back to JSON.
Files are created with 0600 permissions because they contain cleartext keys.
Use --out - to write to stdout.

Examples:
  wifikeys export --out wifi_passwords.json
  wifikeys export --format csv --out wifi.csv
  wifikeys export --format yaml --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(formatName, outPath)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = export.DefaultFilename(format)
			}

			set, err := collect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				loggerFor(cfg).Warn("No WiFi profiles found!")
				return dserrors.UserError{
					Message:    "Nothing to export",
					Suggestion: "Run 'wifikeys profiles' to check which profiles are saved",
				}
			}

			data, err := export.Render(format, set)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", format, err)
			}
			defer secure.Wipe(data)

			if outPath == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			if err := export.WriteFile(outPath, data); err != nil {
				return dserrors.UserError{
					Message:    fmt.Sprintf("Failed to write %s", outPath),
					Details:    err.Error(),
					Suggestion: "Check that the directory exists and is writable",
					Err:        err,
				}
			}

			logger := loggerFor(cfg)
			logger.Info("Saved %d profiles to %s", set.Len(), outPath)
			logger.Warn("File contains secrets - handle with care")
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: "+formatList())
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, or - for stdout (default: wifi_passwords.<ext>)")

	return cmd
}

func resolveFormat(name, path string) (export.Format, error) {
	if name == "" {
		if f, ok := export.DetectFormat(path); ok {
			return f, nil
		}
		return export.FormatJSON, nil
	}

	f, err := export.ParseFormat(name)
	if errors.Is(err, export.ErrUnknownFormat) {
		return "", dserrors.UserError{
			Message:    fmt.Sprintf("Unknown export format: %s", name),
			Suggestion: "Use one of: " + formatList(),
			Err:        err,
		}
	}
	return f, err
}

func formatList() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
