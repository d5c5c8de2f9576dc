// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Cell is the state of a module: not yet placed, light or dark.
type Cell uint8

const (
	Unset Cell = iota
	Light
	Dark
)

func (c Cell) String() string {
	switch c {
	case Unset:
		return "unset"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "invalid"
}

func cell(dark bool) Cell {
	if dark {
		return Dark
	}
	return Light
}

// A Grid is a square matrix of modules.  Modules are addressed by row
// and column from the top left corner; addressing a module outside
// the grid panics.
type Grid struct {
	v     Version
	size  int
	cells []Cell   // row-major
	align [][2]int // stamped alignment pattern centres
}

// NewGrid returns a grid for version v with all modules unset.
func NewGrid(v Version) *Grid {
	siz := v.Size()
	return &Grid{v: v, size: siz, cells: make([]Cell, siz*siz)}
}

// Version returns the QR version of g.
func (g *Grid) Version() Version { return g.v }

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

func (g *Grid) index(row, col int) int {
	if uint(row) >= uint(g.size) || uint(col) >= uint(g.size) {
		panic("qr: module out of range")
	}
	return row*g.size + col
}

// At returns the module at row, col.
func (g *Grid) At(row, col int) Cell { return g.cells[g.index(row, col)] }

// IsDark reports whether the module at row, col is dark.
func (g *Grid) IsDark(row, col int) bool { return g.At(row, col) == Dark }

// IsLight reports whether the module at row, col is light.
func (g *Grid) IsLight(row, col int) bool { return g.At(row, col) == Light }

// Complete reports whether every module is set.
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if c == Unset {
			return false
		}
	}
	return true
}

// set sets the module at row, col unless it is already set.
func (g *Grid) set(row, col int, dark bool) {
	if i := g.index(row, col); g.cells[i] == Unset {
		g.cells[i] = cell(dark)
	}
}

// put sets the module at row, col.
func (g *Grid) put(row, col int, dark bool) {
	g.cells[g.index(row, col)] = cell(dark)
}

// Grid returns the grid of a QR code holding codewords, masked with
// mask m.  Codeword bits are placed most significant first; modules
// left over after the last codeword are placed as 0 bits.
func (p *Plan) Grid(codewords []byte, m Mask) *Grid {
	if !m.IsValid() {
		panic(ErrMask)
	}
	g := NewGrid(p.Version)
	siz := g.size
	g.finder(0, 0)
	g.finder(siz-7, 0)
	g.finder(0, siz-7)
	g.alignment()
	g.timing()
	g.format(FormatBits(p.Level, m))
	g.version()
	g.mapData(NewBitStream(codewords), m)
	if !g.Complete() {
		panic("qr: internal error")
	}
	return g
}

// finder stamps a finder pattern with its light separator at the
// top left corner row, col.
func (g *Grid) finder(row, col int) {
	for r := -1; r <= 7; r++ {
		for c := -1; c <= 7; c++ {
			rr, cc := row+r, col+c
			if rr < 0 || rr >= g.size || cc < 0 || cc >= g.size {
				continue
			}
			ring := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
				0 <= c && c <= 6 && (r == 0 || r == 6)
			core := 2 <= r && r <= 4 && 2 <= c && c <= 4
			g.set(rr, cc, ring || core)
		}
	}
}

// alignment stamps alignment patterns at every pair of alignment
// coordinates whose centre is not yet set.
func (g *Grid) alignment() {
	pos := vtab[g.v].align
	for _, row := range pos {
		for _, col := range pos {
			if g.At(row, col) != Unset {
				continue
			}
			g.align = append(g.align, [2]int{row, col})
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					dark := r == -2 || r == 2 || c == -2 || c == 2 ||
						r == 0 && c == 0
					g.set(row+r, col+c, dark)
				}
			}
		}
	}
}

// timing stamps the timing patterns along row and column 6.
func (g *Grid) timing() {
	for i := 8; i < g.size-8; i++ {
		g.set(i, 6, i%2 == 0)
		g.set(6, i, i%2 == 0)
	}
}

// format writes the 15 format bits, least significant first, down
// column 8 and leftwards along row 8, and sets the dark module above
// the bottom left finder pattern.
func (g *Grid) format(bits uint16) {
	siz := g.size
	for i := 0; i < 15; i++ {
		dark := bits>>i&1 != 0
		switch {
		case i < 6:
			g.put(i, 8, dark)
		case i < 8:
			g.put(i+1, 8, dark)
		default:
			g.put(siz-15+i, 8, dark)
		}
		switch {
		case i < 8:
			g.put(8, siz-i-1, dark)
		case i == 8:
			g.put(8, 7, dark)
		default:
			g.put(8, 14-i, dark)
		}
	}
	g.put(siz-8, 8, true)
}

// version writes the 18 version bits into the 6x3 block left of the
// top right finder pattern and the 3x6 block above the bottom left
// one.  Versions below 7 have no version information.
func (g *Grid) version() {
	if g.v < 7 {
		return
	}
	bits := VersionBits(g.v)
	off := g.size - 11
	for i := 0; i < 18; i++ {
		dark := bits>>i&1 != 0
		g.put(i/3, i%3+off, dark)
		g.put(i%3+off, i/3, dark)
	}
}

// mapData places bits from s into unset modules in placement order,
// inverting those selected by mask m.
func (g *Grid) mapData(s *BitStream, m Mask) {
	sc := newScanner(g.size)
	for row, col, ok := sc.next(); ok; row, col, ok = sc.next() {
		if g.At(row, col) != Unset {
			continue
		}
		dark := s.Next() != 0
		if m.Invert(row, col) {
			dark = !dark
		}
		g.set(row, col, dark)
	}
}

// A scanner yields module coordinates in codeword placement order.
// The grid is scanned in strips two modules wide from the right edge
// leftwards, skipping the vertical timing pattern; the first strip
// upwards and each following one in the opposite direction.  In each
// row the right module comes before the left one.
type scanner struct {
	size int
	col  int  // right column of the strip
	row  int  // current row
	up   bool // scanning upwards
	left bool // next module is in the left column
}

func newScanner(size int) *scanner {
	return &scanner{size: size, col: size - 1, row: size - 1, up: true}
}

// next returns the next module coordinates, or ok == false after the
// last module.
func (s *scanner) next() (row, col int, ok bool) {
	if s.col <= 0 {
		return 0, 0, false
	}
	row, col = s.row, s.col
	if !s.left {
		s.left = true
		return row, col, true
	}
	col--
	s.left = false
	if s.up {
		s.row--
	} else {
		s.row++
	}
	if s.row < 0 || s.row >= s.size {
		s.row = min(max(s.row, 0), s.size-1)
		s.up = !s.up
		if s.col -= 2; s.col == 6 {
			s.col--
		}
	}
	return row, col, true
}
