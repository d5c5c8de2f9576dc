// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// ErrArgs is returned when writing a Code with invalid geometry.
var ErrArgs = errors.New("qr: invalid arguments")

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	length := c.Scale * (c.Size + c.Border*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	var white byte
	if c.Reverse {
		white = 0xff
	}
	row := make([]byte, (length+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		pbmRow(row, c, y, white)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes module row y with its quiet zone as a row of image
// pixels.  In PBM 1 is black; padding bits at the end of the row are
// set to white.
func pbmRow(row []byte, c *Code, y int, white byte) {
	for i := range row {
		row[i] = white
	}
	scale := c.Scale
	px := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if c.Black(x, y) {
			for i := px; i < px+scale; i++ {
				row[i>>3] ^= 0x80 >> (i & 7)
			}
		}
		px += scale
	}
	if n := px & 7; n != 0 {
		row[len(row)-1] &= 0xff << (8 - n)
	}
}
