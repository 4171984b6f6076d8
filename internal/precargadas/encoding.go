package precargadas

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DefaultEncoding is the charset the bank exports in.
const DefaultEncoding = "windows-1252"

// DecodeReader wraps r so the export file is read as UTF-8. An empty
// encoding selects the default windows-1252.
func DecodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch normalizeEncoding(encoding) {
	case "", "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "utf-8", "utf8":
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

func normalizeEncoding(encoding string) string {
	return strings.ToLower(strings.TrimSpace(encoding))
}
