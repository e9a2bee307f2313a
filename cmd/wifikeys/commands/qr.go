package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/export"
)

func NewQRCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Generate or delete a QR code holding the WiFi key listing",
	}

	cmd.AddCommand(
		newQRGenerateCommand(cfg),
		newQRDeleteCommand(cfg),
	)

	return cmd
}

func newQRGenerateCommand(cfg *config.Config) *cobra.Command {
	var (
		outPath string
		size    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the key listing as a PNG QR code",
		Long: `Collect every saved WiFi profile and encode the "name: key" listing
into a PNG QR code. The image holds cleartext keys and is written with 0600
permissions. Remove it with 'wifikeys qr delete' when done.

The payload is the listing alone, one "name: key" line per profile. It does
not include the "WiFi Passwords:" header printed by 'wifikeys show'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := collect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.QRPath()
			}
			if size <= 0 {
				size = cfg.QRSize()
			}

			png, err := export.QR(set, size)
			if errors.Is(err, export.ErrNothingToEncode) {
				loggerFor(cfg).Warn("No passwords to generate QR code!")
				return dserrors.UserError{
					Message:    "Nothing to encode",
					Suggestion: "Run 'wifikeys show' to check which profiles are saved",
					Err:        err,
				}
			}
			if err != nil {
				return dserrors.UserError{
					Message:    "Failed to generate QR code",
					Details:    err.Error(),
					Suggestion: "Too many profiles for one QR code; use 'wifikeys export' instead",
					Err:        err,
				}
			}

			if err := export.WriteFile(outPath, png); err != nil {
				return dserrors.UserError{
					Message:    fmt.Sprintf("Failed to write %s", outPath),
					Details:    err.Error(),
					Suggestion: "Check that the directory exists and is writable",
					Err:        err,
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "PNG output path (default from config, else wifi_qr.png)")
	cmd.Flags().IntVar(&size, "size", 0, "Image edge length in pixels (default from config, else 256)")

	return cmd
}

func newQRDeleteCommand(cfg *config.Config) *cobra.Command {
	var (
		path   string
		shred  bool
		passes int
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a generated QR code",
		Long: `Delete the QR code image written by 'wifikeys qr generate'.

With --shred the file is overwritten with random data before removal.
Modern SSDs with wear leveling may still retain data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			if path == "" {
				path = cfg.QRPath()
			}

			info, err := os.Stat(path)
			if os.IsNotExist(err) {
				loggerFor(cfg).Warn("No QR Code found to delete!")
				return dserrors.UserError{
					Message:    fmt.Sprintf("No QR code found at %s", path),
					Suggestion: "Generate one with 'wifikeys qr generate' or pass --path",
				}
			}
			if err != nil {
				return dserrors.UserError{
					Message:    fmt.Sprintf("Cannot access path: %s", path),
					Details:    err.Error(),
					Suggestion: "Check that the file exists and is accessible",
				}
			}
			if info.IsDir() {
				return dserrors.UserError{
					Message:    fmt.Sprintf("Path is a directory: %s", path),
					Suggestion: "Pass the path of the PNG file",
				}
			}

			if shred {
				err = shredFile(path, passes)
			} else {
				err = os.Remove(path)
			}
			if err != nil {
				return dserrors.UserError{
					Message: fmt.Sprintf("Failed to delete %s", path),
					Details: err.Error(),
					Err:     err,
				}
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "QR Code deleted successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "QR image to delete (default from config, else wifi_qr.png)")
	cmd.Flags().BoolVar(&shred, "shred", false, "Overwrite the file with random data before deleting")
	cmd.Flags().IntVarP(&passes, "passes", "n", 3, "Number of overwrite passes with --shred")

	return cmd
}
