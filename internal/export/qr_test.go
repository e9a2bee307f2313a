package export_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/systmms/wifikeys/internal/export"
	"github.com/systmms/wifikeys/internal/wlan"
)

func TestQR(t *testing.T) {
	t.Parallel()

	data, err := export.QR(sampleSet(), 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestQRDefaultSize(t *testing.T) {
	t.Parallel()

	data, err := export.QR(sampleSet(), 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, export.DefaultQRSize, img.Bounds().Dx())
}

func TestQRIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := export.QR(sampleSet(), 128)
	require.NoError(t, err)
	b, err := export.QR(sampleSet(), 128)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestQREmptySet(t *testing.T) {
	t.Parallel()

	_, err := export.QR(wlan.NewCredentialSet(), 128)
	assert.ErrorIs(t, err, export.ErrNothingToEncode)
}

func TestQRTooLarge(t *testing.T) {
	t.Parallel()

	_, err := export.QRFromText(strings.Repeat("x", 8000), 128)
	require.Error(t, err)
	assert.NotErrorIs(t, err, export.ErrNothingToEncode)
}
