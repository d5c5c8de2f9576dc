// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"

	"github.com/unixdj/qrmodel/gf256"
)

// A Plan describes how to construct a QR code
// with a specific version and level.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level

	DataBits int     // number of data bits
	Size     int     // number of modules on a side
	Blocks   []Block // error correction blocks; must not be modified
}

// Plans are created the first time a combination of version and
// level is used and shared afterwards.
var plans [MaxVersion + 1][H + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns a Plan for a QR code with the given version and level.
func NewPlan(version Version, level Level) (*Plan, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p := &plans[version][level]
	p.once.Do(func() {
		p.p = &Plan{
			Version:  version,
			Level:    level,
			DataBits: version.DataBits(level),
			Size:     version.Size(),
			Blocks:   version.Blocks(level),
		}
	})
	return p.p, nil
}

const (
	pad0 = 0xec // first pad codeword
	pad1 = 0x11 // second pad codeword
)

// Codewords returns the final codeword sequence for data encoded as a
// single byte mode segment: data codewords of all blocks interleaved,
// followed by error correction codewords of all blocks interleaved.
func (p *Plan) Codewords(data []byte) ([]byte, error) {
	nc, err := CountLength(Byte, p.Version)
	if err != nil {
		return nil, err
	}
	if n := 4 + nc + len(data)*8; n > p.DataBits {
		return nil, CapacityError{n, p.DataBits}
	}

	b := NewBits(p.Version)
	b.Write(uint32(modes[Byte].indicator), 4)
	b.Write(uint32(len(data)), nc)
	for _, c := range data {
		b.Write(uint32(c), 8)
	}

	// Terminator, if it fits, then pad to a byte boundary
	// and fill with alternating pad codewords.
	if b.Bits()+4 <= p.DataBits {
		b.Write(0, 4)
	}
	for b.Bits()%8 != 0 {
		b.Put(false)
	}
	for c := uint32(pad0); b.Bits() < p.DataBits; c ^= pad0 ^ pad1 {
		b.Write(c, 8)
	}
	return p.interleave(b.Bytes()), nil
}

// interleave splits data codewords into blocks, computes the error
// correction codewords for each block and returns both interleaved.
func (p *Plan) interleave(dat []byte) []byte {
	var (
		data  = make([][]byte, len(p.Blocks))
		check = make([][]byte, len(p.Blocks))
		nd    int // maximum data codewords per block
		nc    int // maximum check codewords per block
	)
	for i, bl := range p.Blocks {
		data[i], dat = dat[:bl.Data], dat[bl.Data:]
		check[i] = make([]byte, bl.Check())
		gf256.NewRSEncoder(Field, bl.Check()).ECC(data[i], check[i])
		nd = max(nd, bl.Data)
		nc = max(nc, bl.Check())
	}
	if len(dat) != 0 {
		panic("qr: internal error")
	}

	out := make([]byte, 0, p.Version.Bytes())
	out = interleave(out, data, nd)
	out = interleave(out, check, nc)
	if len(out) != p.Version.Bytes() {
		panic("qr: internal error")
	}
	return out
}

// interleave appends the i-th byte of each block in src to dst for i
// from 0 to n-1, skipping blocks shorter than i+1.
func interleave(dst []byte, src [][]byte, n int) []byte {
	for i := 0; i < n; i++ {
		for _, b := range src {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}

// A Code is a QR code: its module grid, and the mask chosen for it
// with the penalty of every mask evaluated.
type Code struct {
	*Grid
	Level     Level
	Mask      Mask
	Penalties [NumMasks]int
}

// Encode returns a QR code for data.
func (p *Plan) Encode(data []byte) (*Code, error) {
	cw, err := p.Codewords(data)
	if err != nil {
		return nil, err
	}
	mask, g, pen := p.Evaluate(cw)
	return &Code{Grid: g, Level: p.Level, Mask: mask, Penalties: pen}, nil
}

// Encode encodes data using a Plan with the given version and level.
func Encode(version Version, level Level, data []byte) (*Code, error) {
	p, err := NewPlan(version, level)
	if err != nil {
		return nil, err
	}
	return p.Encode(data)
}
