// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Role classifies a module by the part of the symbol it belongs to.
type Role uint8

const (
	Data            Role = iota // data and error correction codewords
	FinderCenter                // centre of a finder pattern
	Finder                      // rest of a finder pattern and its separator
	AlignmentCenter             // centre of an alignment pattern
	Alignment                   // rest of an alignment pattern
	Timing                      // timing pattern
	Format                      // format information and the dark module
	VersionInfo                 // version information
)

var roleNames = [...]string{
	Data:            "data",
	FinderCenter:    "finder-center",
	Finder:          "finder",
	AlignmentCenter: "alignment-center",
	Alignment:       "alignment",
	Timing:          "timing",
	Format:          "format",
	VersionInfo:     "version",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "invalid"
}

// Roles returns the role of every module of g in row-major order.
// Roles does not modify g.
func (g *Grid) Roles() []Role {
	n := g.size
	roles := make([]Role, n*n)
	mark := func(row, col int, r Role) {
		if 0 <= row && row < n && 0 <= col && col < n {
			roles[row*n+col] = r
		}
	}
	// Later passes win where areas touch.
	for i := 8; i < n-8; i++ {
		mark(i, 6, Timing)
		mark(6, i, Timing)
	}
	for _, a := range g.align {
		for r := -2; r <= 2; r++ {
			for c := -2; c <= 2; c++ {
				mark(a[0]+r, a[1]+c, Alignment)
			}
		}
		mark(a[0], a[1], AlignmentCenter)
	}
	for _, f := range [3][2]int{{3, 3}, {3, n - 4}, {n - 4, 3}} {
		for r := -4; r <= 4; r++ {
			for c := -4; c <= 4; c++ {
				mark(f[0]+r, f[1]+c, Finder)
			}
		}
		mark(f[0], f[1], FinderCenter)
	}
	for i := 0; i <= 8; i++ {
		if i != 6 {
			mark(i, 8, Format)
			mark(8, i, Format)
		}
		if i < 8 {
			mark(n-1-i, 8, Format)
			mark(8, n-1-i, Format)
		}
	}
	if g.v >= 7 {
		for i := n - 11; i < n-8; i++ {
			for j := 0; j < 6; j++ {
				mark(i, j, VersionInfo)
				mark(j, i, VersionInfo)
			}
		}
	}
	return roles
}
