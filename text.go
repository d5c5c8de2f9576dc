// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// A Charset is a character encoding used for converting text to the
// bytes stored in a QR code.
type Charset int

const (
	UTF8     Charset = iota // UTF-8, unchanged
	Latin1                  // ISO 8859-1
	ShiftJIS                // Shift JIS
	UTF16                   // UTF-16, big endian, with byte order mark
)

var charsets = [...]struct {
	name string
	enc  encoding.Encoding
}{
	UTF8:     {"utf8", unicode.UTF8},
	Latin1:   {"latin1", charmap.ISO8859_1},
	ShiftJIS: {"sjis", japanese.ShiftJIS},
	UTF16:    {"utf16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

func (cs Charset) String() string {
	if cs.isValid() {
		return charsets[cs].name
	}
	return fmt.Sprintf("Charset(%d)", int(cs))
}

func (cs Charset) isValid() bool { return 0 <= cs && int(cs) < len(charsets) }

// Charsets returns the names of all charsets, as accepted by
// ParseCharset.
func Charsets() []string {
	s := make([]string, len(charsets))
	for i := range charsets {
		s[i] = charsets[i].name
	}
	return s
}

// ParseCharset returns the Charset called name, ignoring case, dashes
// and underscores: "UTF-8" and "Shift_JIS" are accepted as well as
// "utf8" and "sjis".
func ParseCharset(name string) (Charset, error) {
	s := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	switch s {
	case "shiftjis":
		s = "sjis"
	case "iso88591":
		s = "latin1"
	}
	for i := range charsets {
		if charsets[i].name == s {
			return Charset(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown charset %q", name)
}

// An EncodingError reports text that cannot be represented in a
// Charset.
type EncodingError struct {
	Charset Charset
	Err     error
}

func (e *EncodingError) Error() string {
	return "qr: text incompatible with " + e.Charset.String() + ": " +
		e.Err.Error()
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Bytes returns text converted to charset cs.  The text must be valid
// UTF-8.
func (cs Charset) Bytes(text string) ([]byte, error) {
	if !cs.isValid() {
		return nil, fmt.Errorf("qr: invalid charset %d", int(cs))
	}
	if !utf8.ValidString(text) {
		return nil, &EncodingError{cs, encoding.ErrInvalidUTF8}
	}
	if cs == UTF8 {
		return []byte(text), nil
	}
	b, err := charsets[cs].enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, &EncodingError{cs, err}
	}
	return b, nil
}

// EncodeText returns an encoding of text converted to charset cs at
// the given error correction level.
func EncodeText(text string, cs Charset, level Level) (*Code, error) {
	b, err := cs.Bytes(text)
	if err != nil {
		return nil, err
	}
	return Encode(b, level)
}
