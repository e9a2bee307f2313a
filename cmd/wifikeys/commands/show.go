package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/export"
	"github.com/systmms/wifikeys/internal/secure"
	"github.com/systmms/wifikeys/internal/wlan"
)

// ShowHeader precedes the listing printed by show.
const ShowHeader = "WiFi Passwords:"

// clipboardWrite is replaced in tests; the real clipboard needs a desktop session.
var clipboardWrite = clipboard.WriteAll

func NewShowCommand(cfg *config.Config) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every saved WiFi profile with its key",
		Long: `Enumerate the saved WiFi profiles and print each profile's key.

Profiles without a stored key are shown as "No password found". Profiles
whose key could not be read are shown as "Error: <reason>" and do not stop
the listing.

Examples:
  wifikeys show
  wifikeys show --copy     # also copy the listing to the clipboard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := collect(cmd.Context(), cfg)
			if err != nil && !wlan.IsListError(err) {
				return err
			}

			out := cmd.OutOrStdout()
			if err != nil || set.Len() == 0 {
				_, _ = fmt.Fprintln(out, NoProfilesMessage)
				if err != nil {
					return dserrors.UserError{
						Message:    "Unable to enumerate WiFi profiles",
						Details:    firstLine(err.Error()),
						Suggestion: "Run 'wifikeys doctor' to check netsh availability",
						Err:        err,
					}
				}
				return nil
			}

			listing := ShowHeader + "\n" + export.Text(set)
			_, _ = fmt.Fprint(out, listing)

			if copyToClipboard {
				if err := copyListing(strings.TrimSpace(listing)); err != nil {
					return err
				}
				loggerFor(cfg).Info("Passwords copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the listing to the clipboard")

	return cmd
}

// copyListing keeps the listing sealed until the clipboard write.
func copyListing(listing string) error {
	buf, err := secure.NewSecureBufferFromString(listing)
	if err != nil {
		return fmt.Errorf("failed to protect listing: %w", err)
	}
	defer buf.Destroy()

	return buf.Use(func(plaintext []byte) error {
		if err := clipboardWrite(string(plaintext)); err != nil {
			return dserrors.UserError{
				Message:    "Failed to copy to clipboard",
				Details:    err.Error(),
				Suggestion: "Copy the printed listing manually, or install a clipboard utility (xclip, xsel or wl-clipboard) on Linux",
				Err:        err,
			}
		}
		return nil
	})
}
