// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestCharsetBytes(t *testing.T) {
	for _, tt := range []struct {
		cs   Charset
		text string
		want []byte
	}{
		{UTF8, "café", []byte("café")},
		{Latin1, "café", []byte{'c', 'a', 'f', 0xe9}},
		{ShiftJIS, "QRコード", []byte{'Q', 'R', 0x83, 0x52, 0x81, 0x5b, 0x83, 0x68}},
		{UTF16, "A", []byte{0xfe, 0xff, 0x00, 0x41}},
	} {
		b, err := tt.cs.Bytes(tt.text)
		require.NoError(t, err, "%s", tt.cs)
		assert.Equal(t, tt.want, b, "%s", tt.cs)
	}
}

func TestCharsetIncompatible(t *testing.T) {
	for _, tt := range []struct {
		cs   Charset
		text string
	}{
		{Latin1, "price: 5€"},
		{ShiftJIS, "€"},
		{UTF8, "\xff"},
	} {
		_, err := EncodeText(tt.text, tt.cs, M)
		var ee *EncodingError
		require.True(t, errors.As(err, &ee), "%s: %v", tt.cs, err)
		assert.Equal(t, tt.cs, ee.Charset)
		assert.Contains(t, err.Error(), "qr: text incompatible with "+tt.cs.String())
	}
	_, err := UTF16.Bytes("\xff")
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	_, err = Charset(9).Bytes("x")
	assert.Error(t, err)
}

func TestParseCharset(t *testing.T) {
	for s, want := range map[string]Charset{
		"utf8":       UTF8,
		"UTF-8":      UTF8,
		"latin1":     Latin1,
		"ISO-8859-1": Latin1,
		"sjis":       ShiftJIS,
		"Shift_JIS":  ShiftJIS,
		"utf-16":     UTF16,
	} {
		cs, err := ParseCharset(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, cs, s)
	}
	_, err := ParseCharset("ebcdic")
	assert.EqualError(t, err, `qr: unknown charset "ebcdic"`)
	_, err = ParseCharset("EBCDIC-037")
	assert.EqualError(t, err, `qr: unknown charset "EBCDIC-037"`)
	assert.Equal(t, []string{"utf8", "latin1", "sjis", "utf16"}, Charsets())
	assert.Equal(t, "Charset(7)", Charset(7).String())
}

func TestEncodeText(t *testing.T) {
	c, err := EncodeText("HELLO WORLD", Latin1, L)
	require.NoError(t, err)
	assert.Equal(t, helloRows, rows(c))

	a, err := EncodeText("Grüße", UTF8, Q)
	require.NoError(t, err)
	b, err := EncodeText("Grüße", Latin1, Q)
	require.NoError(t, err)
	assert.NotEqual(t, a.Bitmap, b.Bitmap)
}
