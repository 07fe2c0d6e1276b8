package dataobj

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	apperr "roguewar-client/internal/errors"
)

var (
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// SaveFile writes o to path as pretty UTF-8 JSON.
func SaveFile(o Object, path string) error {
	data, err := ToJSON(o, true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a JSON dump written in UTF-8, UTF-16 or UTF-32 and populates o.
// The encoding is picked from the byte-order mark; no mark means UTF-8.
func LoadFile(o Object, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return apperr.WrapDecode(fmt.Sprintf("decode %s", path), err)
	}
	return FromJSON(o, text)
}

// decodeText converts raw file content to UTF-8. UTF-32 marks are checked
// first because the UTF-32LE mark starts with the UTF-16LE one.
func decodeText(raw []byte) ([]byte, error) {
	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(raw, bomUTF32BE):
		enc = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	case bytes.HasPrefix(raw, bomUTF32LE):
		enc = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	case bytes.HasPrefix(raw, bomUTF16BE):
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case bytes.HasPrefix(raw, bomUTF16LE):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	default:
		enc = unicode.UTF8BOM
	}
	return enc.NewDecoder().Bytes(raw)
}
