package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/quantmind-br/mediadata-go/internal/domain"
)

// asciiString is marshalled through AppendQuoted instead of encoding/json's
// string encoder, which would replace invalid UTF-8 with U+FFFD.
type asciiString string

func (s asciiString) MarshalJSON() ([]byte, error) {
	return AppendQuoted(nil, string(s)), nil
}

type jsonEntry struct {
	Path asciiString `json:"path"`
	Name asciiString `json:"name"`
	Type asciiString `json:"type"`
}

// EncodeManifest renders m as an indented JSON array whose strings are pure ASCII.
// encoding/json only lays out the structure; every string goes through AppendQuoted.
func EncodeManifest(m domain.Manifest, indent string) ([]byte, error) {
	entries := make([]jsonEntry, 0, len(m))
	for _, e := range m {
		entries = append(entries, jsonEntry{
			Path: asciiString(e.Path),
			Name: asciiString(e.Name),
			Type: asciiString(e.Type),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// AppendQuoted appends s to dst as a JSON string literal containing only
// printable ASCII. Control characters, DEL and every non-ASCII rune become
// lowercase \uXXXX escapes, with surrogate pairs outside the Basic
// Multilingual Plane. Each byte of an invalid UTF-8 sequence becomes the
// lone surrogate \udcXX, so file names that are not valid UTF-8 keep their
// original bytes recoverable.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			dst = appendASCII(dst, c)
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			dst = appendEscape(dst, 0xdc00+rune(c))
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			dst = appendEscape(appendEscape(dst, hi), lo)
		default:
			dst = appendEscape(dst, r)
		}
		i += size
	}
	return append(dst, '"')
}

func appendASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		return append(dst, '\\', c)
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	case '\b':
		return append(dst, '\\', 'b')
	case '\f':
		return append(dst, '\\', 'f')
	}
	if c < 0x20 || c == 0x7f {
		return appendEscape(dst, rune(c))
	}
	return append(dst, c)
}

func appendEscape(dst []byte, r rune) []byte {
	return fmt.Appendf(dst, `\u%04x`, r)
}
