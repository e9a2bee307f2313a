package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/systmms/wifikeys/internal/wlan"
)

const (
	// DefaultQRFilename is where the QR image is written unless overridden.
	DefaultQRFilename = "wifi_qr.png"
	// DefaultQRSize is the PNG edge length in pixels.
	DefaultQRSize = 256
)

// ErrNothingToEncode is returned when the listing is empty.
var ErrNothingToEncode = errors.New("no passwords to encode")

// QR renders the Text listing as a PNG QR code of size x size pixels.
// A non-positive size selects DefaultQRSize.
func QR(set *wlan.CredentialSet, size int) ([]byte, error) {
	return QRFromText(strings.TrimRight(Text(set), "\n"), size)
}

// QRFromText encodes arbitrary listing text.
func QRFromText(listing string, size int) ([]byte, error) {
	if strings.TrimSpace(listing) == "" {
		return nil, ErrNothingToEncode
	}
	if size <= 0 {
		size = DefaultQRSize
	}

	png, err := qrcode.Encode(listing, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
