package wlan

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/systmms/wifikeys/internal/secure"
)

const (
	// EncodingAuto keeps valid UTF-8 and decodes anything else as the US
	// OEM code page.
	EncodingAuto = "auto"
	// EncodingUTF8 passes output through unchanged.
	EncodingUTF8 = "utf-8"
)

// netsh writes in the console's OEM code page, not UTF-8.
var codePages = map[string]encoding.Encoding{
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"cp852":  charmap.CodePage852,
	"cp866":  charmap.CodePage866,
	"cp1250": charmap.Windows1250,
	"cp1251": charmap.Windows1251,
	"cp1252": charmap.Windows1252,
}

// Encodings lists the accepted output encoding names.
func Encodings() []string {
	names := []string{EncodingAuto, EncodingUTF8}
	pages := make([]string, 0, len(codePages))
	for name := range codePages {
		pages = append(pages, name)
	}
	sort.Strings(pages)
	return append(names, pages...)
}

// decodeOutput converts raw command output to a UTF-8 string. The
// intermediate decoded buffer is wiped.
func decodeOutput(raw []byte, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", EncodingAuto:
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		name = "cp437"
	case EncodingUTF8, "utf8":
		return string(raw), nil
	}

	enc, ok := codePages[name]
	if !ok {
		return "", fmt.Errorf("unsupported output encoding %q (supported: %s)", name, strings.Join(Encodings(), ", "))
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s output: %w", name, err)
	}
	defer secure.Wipe(decoded)
	return string(decoded), nil
}
