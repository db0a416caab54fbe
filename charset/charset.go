// Package charset resolves the encoding name carried in a Features block
// ("UTF-8", "ISO-8859-1", ...) to a concrete golang.org/x/text/encoding
// codec, and implements the byte-wide round-trip shim the UTF-8 variants
// of the encoders rely on.
//
// No repo in the reference corpus rolls its own charset registry, so this
// package leans on the ecosystem's standard tool for the job instead of a
// hand-written name-to-codec table.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Resolve maps a declared encoding name to its encoding.Encoding.
// Unknown names are a configuration error.
func Resolve(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF-8", "UTF8":
		return unicode.UTF8, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1", "LATIN-1":
		return charmap.ISO8859_1, nil
	case "ISO-8859-2", "ISO8859-2", "LATIN2", "LATIN-2":
		return charmap.ISO8859_2, nil
	case "WINDOWS-1250", "CP1250":
		return charmap.Windows1250, nil
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("charset: unknown encoding %q", name)
	}
}

// EncodeString converts s (a Go UTF-8 string) into the byte representation
// of enc. A failure here means the declared encoding rejects a byte
// sequence that actually occurs in a live dictionary.
func EncodeString(enc encoding.Encoding, s string) ([]byte, error) {
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("charset: encode %q: %w", s, err)
	}
	return []byte(out), nil
}

// DecodeBytes converts raw bytes in enc's charset back into a Go string.
func DecodeBytes(enc encoding.Encoding, b []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("charset: decode %x: %w", b, err)
	}
	return string(out), nil
}

// ByteWide reinterprets a UTF-8 Go string as a single-byte (Latin-1)
// string, matching each UTF-8 byte to one rune. The delta codec counts
// bytes, so feeding it one-byte-per-rune strings makes "byte count" and
// "rune count" coincide even when the underlying dictionary is UTF-8
// encoded. This is a plain rune/byte reinterpretation loop, not a charset
// conversion — no encoding.Encoding is involved on this path.
func ByteWide(utf8Bytes []byte) string {
	s := make([]rune, len(utf8Bytes))
	for i, b := range utf8Bytes {
		s[i] = rune(b)
	}
	return string(s)
}

// FromByteWide reverses ByteWide: each rune of s (assumed <= 0xFF) becomes
// one output byte.
func FromByteWide(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}
