// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// BCH code generator polynomials over GF(2) and the format
// information mask.
const (
	formatPoly  = 0x537  // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
	formatMask  = 0x5412 // 101010000010010
	versionPoly = 0x1f25 // x^12 + x^11 + x^10 + x^9 + x^8 + x^5 + x^2 + 1
)

// bch returns data followed by the n parity bits of the BCH code
// generated by gen, which must be of degree n.
func bch(data, gen uint32, n int) uint32 {
	rem := data << n
	for d := bits.Len32(gen); bits.Len32(rem) >= d; {
		rem ^= gen << (bits.Len32(rem) - d)
	}
	return data<<n | rem
}

// FormatBits returns the 15 bit format information for the given
// level and mask: 2 level bits, 3 mask bits and 10 parity bits,
// masked with 101010000010010.
func FormatBits(l Level, m Mask) uint16 {
	return uint16(bch(uint32(l.Indicator()<<3|int(m&7)), formatPoly, 10) ^
		formatMask)
}

// VersionBits returns the 18 bit version information for v: 6 version
// bits and 12 parity bits.  Versions below 7 carry no version
// information and VersionBits returns 0.
func VersionBits(v Version) uint32 {
	if v < 7 {
		return 0
	}
	return bch(uint32(v), versionPoly, 12)
}
