package main

import (
	"bytes"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmodel"
)

func TestRGBASet(t *testing.T) {
	for s, want := range map[string]rgba{
		"fff":      {0xff, 0xff, 0xff, 0xff},
		"f008":     {0xff, 0x00, 0x00, 0x88},
		"123456":   {0x12, 0x34, 0x56, 0xff},
		"12345678": {0x12, 0x34, 0x56, 0x78},
		"Dark Red": {0x8b, 0x00, 0x00, 0xff},
	} {
		var c rgba
		require.NoError(t, c.Set(s, nil), s)
		assert.Equal(t, want, c, s)
	}
	var c rgba
	assert.Error(t, c.Set("12345", nil))
	assert.Error(t, c.Set("chartreuse", nil))
	assert.Equal(t, "white", (&rgba{0xff, 0xff, 0xff, 0xff}).String())
	assert.Equal(t, "123456", (&rgba{0x12, 0x34, 0x56, 0xff}).String())
}

func TestRandr(t *testing.T) {
	defer func(cx int, inc [2]int) { g.cx, g.inc = cx, inc }(g.cx, g.inc)

	orig, err := qr.Encode([]byte("randr"), qr.M)
	require.NoError(t, err)
	n := orig.Size
	black := func(c *qr.Code) [][]bool {
		b := make([][]bool, n)
		for y := range b {
			b[y] = make([]bool, n)
			for x := range b[y] {
				b[y][x] = c.Black(x, y)
			}
		}
		return b
	}
	want := black(orig)

	c, _ := qr.Encode([]byte("randr"), qr.M)
	g.cx, g.inc = 0, [2]int{1, 1}
	flip()
	got := black(randr(c))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.Equal(t, want[y][n-1-x], got[y][x], "flip %d,%d", x, y)
		}
	}

	// Four rotations are the identity.
	c, _ = qr.Encode([]byte("randr"), qr.M)
	g.cx, g.inc = 0, [2]int{1, 1}
	for i := 0; i < 4; i++ {
		rotate()
	}
	assert.Equal(t, want, black(randr(c)))

	// Rotating counterclockwise moves the top right corner to the
	// top left.
	c, _ = qr.Encode([]byte("randr"), qr.M)
	g.cx, g.inc = 0, [2]int{1, 1}
	rotate()
	got = black(randr(c))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.Equal(t, want[x][n-1-y], got[y][x], "rotate %d,%d", x, y)
		}
	}
}

func TestASCII(t *testing.T) {
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.L)
	require.NoError(t, err)
	c.Border = 1
	var b bytes.Buffer
	require.NoError(t, ascii(c, &b))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat(" ", 46), lines[0])
	assert.Equal(t, "  ##############    ##  ####  ##############  ", lines[1])
}

func TestRoles(t *testing.T) {
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.L)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, roles(c, &b))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 22)
	for i, want := range map[int]string{
		0:  "FFFFFFFfiDdDDfFFFFFFF",
		1:  "FfffffFfIDdDdfFfffffF",
		3:  "FfFCFfFfiDdDdfFfFCFfF",
		6:  "FFFFFFFfTtTtTfFFFFFFF",
		7:  "ffffffffIDDDDffffffff",
		8:  "IIiIiiTIiDDddiIIIiIIi",
		20: "FFFFFFFfIdddDddDdDDDd",
	} {
		assert.Equal(t, want, lines[i], "row %d", i)
	}
	assert.Equal(t, "", lines[21])
}

func TestEPS(t *testing.T) {
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.L)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, eps(c, &b))
	out := b.String()
	for _, s := range []string{
		"%!PS-Adobe-2.0 EPSF-2.0\n",
		"%%Title: QR Code version 1-L mask 7\n",
		"%%BoundingBox: 189 279 422 512\n",
		"222 475 translate\n8 dup neg scale\n",
	} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "setrgbcolor")
	require.True(t, strings.HasSuffix(out, "stroke grestore\nend\n%%Trailer\n"))

	_, body, ok := strings.Cut(out, "newpath 0 0 moveto\n")
	require.True(t, ok)
	lines := strings.Split(strings.TrimSuffix(body,
		"stroke grestore\nend\n%%Trailer\n"), "\n")
	require.Len(t, lines, c.Size+1)
	assert.Equal(t, "7 0 p 1 2 p 2 1 p 7 1 p r", lines[0])
	for y, l := range lines[:c.Size] {
		f := strings.Fields(l)
		require.Equal(t, "r", f[len(f)-1], "row %d", y)
		x := 0
		for i := 0; i+2 < len(f); i += 3 {
			require.Equal(t, "p", f[i+2])
			n, err := strconv.Atoi(f[i])
			require.NoError(t, err)
			skip, err := strconv.Atoi(f[i+1])
			require.NoError(t, err)
			for ; skip > 0; skip-- {
				require.False(t, c.Black(x, y), "%d,%d", x, y)
				x++
			}
			for ; n > 0; n-- {
				require.True(t, c.Black(x, y), "%d,%d", x, y)
				x++
			}
		}
		for ; x < c.Size; x++ {
			require.False(t, c.Black(x, y), "%d,%d", x, y)
		}
	}
}

func TestEPSColours(t *testing.T) {
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.L)
	require.NoError(t, err)
	var b bytes.Buffer

	c.Reverse = true
	require.NoError(t, eps(c, &b))
	assert.Contains(t, b.String(), "newpath -4 10 moveto\n29 dup neg scale\n"+
		"0 0 0 setrgbcolor\n1 0 rlineto stroke\ngrestore\n"+
		"1 1 1 setrgbcolor\n")

	b.Reset()
	c.Reverse = false
	c.Palette = &[2]color.Color{
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
	require.NoError(t, eps(c, &b))
	assert.Contains(t, b.String(), "1 1 1 setrgbcolor\n1 0 rlineto stroke\n"+
		"grestore\n0 0 1 setrgbcolor\n")
}
