// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes in byte mode.

Encode chooses the smallest version holding the data at the requested
error correction level, builds the symbol with each of the eight mask
patterns and keeps the one with the lowest penalty.  The resulting Code
is a square grid of dark and light modules, with helpers for rendering
it as an image, a PBM file or text.
*/
package qr // import "github.com/unixdj/qrmodel"

import (
	"image"
	"image/color"
	"strings"

	"github.com/unixdj/qrmodel/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// Encode returns an encoding of data at the given error correction
// level, in the smallest QR version that holds it.
func Encode(data []byte, level Level) (*Code, error) {
	l := coding.Level(level)
	v, err := coding.FitVersion(len(data), l)
	if err != nil {
		return nil, err
	}
	cc, err := coding.Encode(v, l, data)
	if err != nil {
		return nil, err
	}
	return newCode(cc), nil
}

// A Code is a square pixel grid.
// It implements image.Image and direct PBM encoding.
type Code struct {
	Bitmap  []byte          // 1 is dark, 0 is light
	Size    int             // number of modules on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // swap dark and light colours
	Palette *[2]color.Color // light and dark colours for Image

	Version   coding.Version       // QR version
	Level     Level                // error correction level
	Mask      coding.Mask          // mask pattern chosen
	Penalties [coding.NumMasks]int // penalty of every mask pattern

	grid *coding.Grid
}

func newCode(cc *coding.Code) *Code {
	siz := cc.Size()
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap:    make([]byte, stride*siz),
		Size:      siz,
		Stride:    stride,
		Scale:     8,
		Border:    4,
		Version:   cc.Version(),
		Level:     Level(cc.Level),
		Mask:      cc.Mask,
		Penalties: cc.Penalties,
		grid:      cc.Grid,
	}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if cc.IsDark(y, x) {
				c.Bitmap[y*stride+x/8] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// IsDark reports whether the module at row, col is dark.
// IsDark panics if row or col is out of range.
func (c *Code) IsDark(row, col int) bool {
	if uint(row) >= uint(c.Size) || uint(col) >= uint(c.Size) {
		panic("qr: module out of range")
	}
	return c.Bitmap[row*c.Stride+col/8]&(0x80>>(col&7)) != 0
}

// IsLight reports whether the module at row, col is light.
// IsLight panics if row or col is out of range.
func (c *Code) IsLight(row, col int) bool { return !c.IsDark(row, col) }

// Black returns true if the pixel at (x,y) is black.  Pixels outside
// the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(0x80>>(x&7)) != 0
}

// Roles returns the role of every module in row-major order.  Roles
// describes the symbol as encoded and ignores changes to c.Bitmap.
func (c *Code) Roles() []coding.Role {
	if c.grid == nil {
		return nil
	}
	return c.grid.Roles()
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Stride*c.Size
}

// Image returns an Image displaying the code, with c.Scale pixels per
// module and a quiet zone of c.Border modules.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	dark := x >= 0 && y >= 0 &&
		c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border)
	if c.Reverse {
		dark = !dark
	}
	if c.Palette != nil {
		if dark {
			return c.Palette[1]
		}
		return c.Palette[0]
	}
	if dark {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.Palette(c.Palette[:])
	}
	return color.GrayModel
}

// String returns the code with its quiet zone drawn with Unicode
// block elements, two rows of modules per line.  Dark modules are
// drawn as spaces and light ones as blocks, for light text on dark
// background; c.Reverse swaps them.
func (c *Code) String() string {
	bord := c.Border
	light := func(x, y int) bool {
		return c.Black(x, y) == c.Reverse
	}
	blocks := [4]string{" ", "▄", "▀", "█"}
	var b strings.Builder
	b.Grow((c.Size + 2*bord + 1) * ((c.Size + 2*bord + 1) / 2) * 3)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if light(x, y) {
				i |= 2
			}
			if y+1 < c.Size+bord && light(x, y+1) {
				i |= 1
			}
			b.WriteString(blocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
