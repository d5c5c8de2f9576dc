// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are stored most significant
// first: bit i is bit 7-i%8 of byte i/8.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for all codewords of a
// QR code with the given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = v.Bytes()
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bits.  It panics unless b holds a whole
// number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Byte returns byte i.  A fractional last byte is padded with zeros.
func (b *Bits) Byte(i int) byte {
	return b.b[i]
}

// Write appends the low nbit bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Put appends a single bit.
func (b *Bits) Put(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) *BitStream { return &BitStream{b: b} }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
