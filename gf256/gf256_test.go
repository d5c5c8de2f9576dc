// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qrField = NewField(0x11d, 2)

func TestExpLog(t *testing.T) {
	for i := 0; i < 255; i++ {
		x := qrField.Exp(i)
		require.NotZero(t, x)
		require.Equal(t, i, qrField.Log(x), "log(exp(%d))", i)
	}
	assert.Equal(t, qrField.Exp(0), qrField.Exp(255))
	assert.Equal(t, -1, qrField.Log(0))
	assert.Equal(t, byte(0), qrField.Exp(-1))
}

func TestMul(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			want := byte(mul(x, y, 0x11d))
			if got := qrField.Mul(byte(x), byte(y)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x",
					x, y, got, want)
			}
		}
	}
}

func TestInv(t *testing.T) {
	assert.Equal(t, byte(0), qrField.Inv(0))
	for x := 1; x < 256; x++ {
		require.Equal(t, byte(1), qrField.Mul(byte(x), qrField.Inv(byte(x))), "x=%#x", x)
	}
}

func TestNewFieldPanics(t *testing.T) {
	assert.Panics(t, func() { NewField(0x100, 2) }) // reducible
	assert.Panics(t, func() { NewField(0xff, 2) })  // degree 7
	assert.Panics(t, func() { NewField(0x11b, 1) }) // 1 is no generator
}

func TestNewPoly(t *testing.T) {
	p := NewPoly([]byte{0, 0, 3, 0, 1}, 2)
	assert.Equal(t, Poly{3, 0, 1, 0, 0}, p)
	assert.Equal(t, 4, p.Degree())
	assert.Equal(t, -1, NewPoly([]byte{0, 0}, 0).Degree())
}

func TestGenerator(t *testing.T) {
	// x^7 + α^87x^6 + α^229x^5 + α^146x^4 + α^149x^3 + α^238x^2 + α^102x + α^21
	want := Poly{1, 127, 122, 154, 164, 11, 68, 117}
	assert.Equal(t, want, qrField.Generator(7))
	for _, e := range []int{87, 229, 146, 149, 238, 102, 21} {
		assert.Contains(t, want, qrField.Exp(e))
	}
	// Every root α^i, i < n, evaluates to zero.
	g := qrField.Generator(10)
	for i := 0; i < 10; i++ {
		var v byte
		for _, c := range g {
			v = qrField.Mul(v, qrField.Exp(i)) ^ c
		}
		assert.Zero(t, v, "g(α^%d)", i)
	}
	assert.Equal(t, Poly{1}, qrField.Generator(0))
}

func TestPolyMul(t *testing.T) {
	assert.Nil(t, qrField.PolyMul(nil, Poly{1}))
	// (x + 1)(x + 1) = x^2 + 1 in characteristic 2
	assert.Equal(t, Poly{1, 0, 1}, qrField.PolyMul(Poly{1, 1}, Poly{1, 1}))
}

func TestMod(t *testing.T) {
	// Version 1-M "HELLO WORLD" in alphanumeric mode, ISO/IEC 18004 Annex I.
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17,
		236, 17, 236, 17}
	rem := qrField.Mod(NewPoly(data, 10), qrField.Generator(10))
	assert.Equal(t, Poly{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}, rem)

	// A divisor of higher degree leaves the dividend unchanged.
	assert.Equal(t, Poly{5, 6}, qrField.Mod(Poly{0, 5, 6}, Poly{1, 2, 3}))
	assert.Panics(t, func() { qrField.Mod(Poly{1}, Poly{0}) })
}

func TestECC(t *testing.T) {
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17,
		236, 17, 236, 17}
	check := make([]byte, 10)
	NewRSEncoder(qrField, 10).ECC(data, check)
	assert.Equal(t, []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}, check)

	// All-zero data has an all-zero remainder; stale bytes are cleared.
	check = []byte{1, 2, 3, 4}
	NewRSEncoder(qrField, 4).ECC(make([]byte, 5), check)
	assert.Equal(t, []byte{0, 0, 0, 0}, check)

	assert.Panics(t, func() { NewRSEncoder(qrField, 4).ECC(data, make([]byte, 3)) })
}
