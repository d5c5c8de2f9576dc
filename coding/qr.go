// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: codeword
// assembly, Reed-Solomon error correction, symbol layout and mask
// selection for byte mode QR codes.
package coding // import "github.com/unixdj/qrmodel/coding"

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/unixdj/qrmodel/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
	ErrTooLong = errors.New("qr: data too long to encode as QR")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// QR versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes.  The length of the character count field
// depends on the class.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Bytes returns the total number of codewords in a QR code with
// version v, data and error correction combined.
func (v Version) Bytes() int { return vtab[v].bytes }

// dataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) dataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.dataBytes(l) * 8 }

// ByteCapacity returns the maximum length of byte mode data that
// fits in a QR code with the given version and level.
func (v Version) ByteCapacity(l Level) int {
	n, err := CountLength(Byte, v)
	if err != nil {
		return 0
	}
	return (v.DataBits(l) - 4 - n) / 8
}

// AlignPositions returns the row and column coordinates of alignment
// pattern centres.  Every pair of them is a candidate centre.
func (v Version) AlignPositions() []int { return slices.Clone(vtab[v].align) }

// A Block describes the codeword counts of an error correction block.
type Block struct {
	Total int // data and error correction codewords
	Data  int // data codewords
}

// Check returns the number of error correction codewords in b.
func (b Block) Check() int { return b.Total - b.Data }

// Blocks returns the error correction blocks of a QR code with the
// given version and level.  Blocks with fewer data codewords come
// first; the data codeword counts of the two groups differ by one.
func (v Version) Blocks(l Level) []Block {
	lev := vtab[v].level[l]
	nd := v.dataBytes(l)
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	b := make([]Block, lev.nblock)
	for i := range b {
		if i == normal {
			db++
		}
		b[i] = Block{Total: db + lev.check, Data: db}
	}
	return b
}

// FitVersion returns the smallest version holding n bytes of byte
// mode data at level l.
func FitVersion(n int, l Level) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	i := sort.Search(int(MaxVersion), func(i int) bool {
		return Version(i+1).ByteCapacity(l) >= n
	})
	if i == int(MaxVersion) {
		return 0, fmt.Errorf("%w: %d bytes at level %s", ErrTooLong, n, l)
	}
	return Version(i + 1), nil
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Indicator returns the two bit error correction level indicator
// stored in format information: 01 for L, 00 for M, 11 for Q and 10
// for H.
func (l Level) Indicator() int { return int(l) ^ 1 }

// A Mode is a QR segment encoding mode.  Only byte mode is implemented.
type Mode int

// Byte mode encodes each byte as 8 bits.
const Byte Mode = 0

type modeInfo struct {
	name        string
	indicator   byte    // 4 bit mode indicator
	countLength [3]byte // character count bits per size class
}

var modes = []modeInfo{
	Byte: {"byte", 4, [3]byte{8, 16, 16}},
}

func (mode Mode) String() string {
	if 0 <= mode && int(mode) < len(modes) {
		return modes[mode].name
	}
	return strconv.Itoa(int(mode))
}

// CountLength returns the length in bits of the character count
// field for mode at version v.
func CountLength(mode Mode, v Version) (int, error) {
	if mode < 0 || int(mode) >= len(modes) || !v.IsValid() {
		return 0, CountLengthError{mode, v}
	}
	return int(modes[mode].countLength[v.SizeClass()]), nil
}

// CountLengthError reports a Mode and Version with no character count
// field length.
type CountLengthError struct {
	Mode
	Version
}

func (e CountLengthError) Error() string {
	return fmt.Sprintf("qr: no character count length for mode %s "+
		"in version %s", e.Mode, e.Version)
}

// CapacityError reports data too long for the chosen version and level.
type CapacityError struct {
	Bits     int // encoded data length
	Capacity int // data capacity of the code
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}

// A version describes metadata associated with a version.
type version struct {
	bytes int   // total codewords
	align []int // alignment pattern coordinates
	level [4]level
}

type level struct {
	nblock int // number of blocks
	check  int // error correction codewords per block
}
