// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n, mul, add int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*mul + add)
	}
	return b
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan(5, Q)
	require.NoError(t, err)
	assert.Equal(t, Version(5), p.Version)
	assert.Equal(t, Q, p.Level)
	assert.Equal(t, 37, p.Size)
	assert.Equal(t, 62*8, p.DataBits)
	q, err := NewPlan(5, Q)
	require.NoError(t, err)
	assert.Same(t, p, q)

	_, err = NewPlan(0, L)
	assert.Equal(t, ErrVersion, err)
	_, err = NewPlan(41, L)
	assert.Equal(t, ErrVersion, err)
	_, err = NewPlan(1, Level(-1))
	assert.Equal(t, ErrLevel, err)
}

func TestCodewords(t *testing.T) {
	hello, _ := hex.DecodeString("40b48454c4c4f20574f524c440ec11ec11ec11" +
		"c8462641e8f8f6")
	for _, tt := range []struct {
		name string
		v    Version
		l    Level
		data []byte
		head []byte // leading codewords
		tail []byte // trailing codewords
		n    int
	}{
		{"hello", 1, L, []byte("HELLO WORLD"), hello, nil, 26},
		{"empty", 1, L, nil, []byte{
			64, 0, 236, 17, 236, 17, 236, 17, 236, 17, 236, 17, 236,
			17, 236, 17, 236, 17, 236, 249, 170, 3, 203, 6, 227, 210,
		}, nil, 26},
		{"one", 1, H, []byte{0x41}, []byte{
			64, 20, 16, 236, 17, 236, 17, 236, 17, 170, 217, 174,
			249, 235, 169, 98, 236, 62, 144, 27, 172, 10, 106, 24,
			191, 143,
		}, nil, 26},
		{"5-Q", 5, Q, seq(60, 7, 3),
			[]byte{67, 230, 124, 115, 192, 86, 237, 228, 48, 199, 93, 84},
			[]byte{37, 60, 157, 36, 34, 190, 197, 30}, 134},
		{"7-M", 7, M, seq(122, 13, 5),
			[]byte{71, 232, 17, 75, 160, 185, 226, 27, 81, 138},
			[]byte{40, 239, 233, 131, 173, 161}, 196},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan(tt.v, tt.l)
			require.NoError(t, err)
			cw, err := p.Codewords(tt.data)
			require.NoError(t, err)
			require.Len(t, cw, tt.n)
			assert.Equal(t, tt.head, cw[:len(tt.head)])
			if tt.tail != nil {
				assert.Equal(t, tt.tail, cw[len(cw)-len(tt.tail):])
			}
		})
	}
}

func TestCodewordsCapacity(t *testing.T) {
	p, err := NewPlan(1, L)
	require.NoError(t, err)
	_, err = p.Codewords(make([]byte, 17))
	require.NoError(t, err)
	_, err = p.Codewords(make([]byte, 18))
	assert.Equal(t, CapacityError{4 + 8 + 18*8, 152}, err)
	assert.EqualError(t, err, "qr: cannot encode 156 bits into 152-bit code")
}

func TestCodewordsTerminator(t *testing.T) {
	ff := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = 0xff
		}
		return b
	}
	p, err := NewPlan(1, L)
	require.NoError(t, err)

	// 4 bits left: the terminator fills the code.
	cw, err := p.Codewords(ff(17))
	require.NoError(t, err)
	want := append(append([]byte{0x41, 0x1f}, ff(16)...), 0xf0)
	assert.Equal(t, want, cw[:19])

	// 12 bits left: terminator, then one pad codeword.
	cw, err = p.Codewords(ff(16))
	require.NoError(t, err)
	want = append(append([]byte{0x41, 0x0f}, ff(15)...), 0xf0, pad0)
	assert.Equal(t, want, cw[:19])
}

func TestEncode(t *testing.T) {
	c, err := Encode(1, L, []byte("HELLO WORLD"))
	require.NoError(t, err)
	assert.Equal(t, Mask(7), c.Mask)
	assert.Equal(t, L, c.Level)
	assert.Equal(t, [NumMasks]int{1104, 1247, 1205, 1201, 1102, 1189, 1164, 1076},
		c.Penalties)
	assert.Equal(t, 21, c.Size())

	_, err = Encode(1, H, make([]byte, 8))
	assert.IsType(t, CapacityError{}, err)
	_, err = Encode(0, H, nil)
	assert.Equal(t, ErrVersion, err)
}
