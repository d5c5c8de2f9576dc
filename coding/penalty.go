// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty returns the penalty value for a complete grid.  The value is
// used for choosing the mask.
//
// Total penalty is the sum of penalties for same-colour neighbourhoods,
// same-colour boxes, finder-like patterns and colour balance.
//
//   - AdjP: for each module with n > 5 of its up to 8 neighbours
//     inside the grid of the same colour -> 3+n-5
//   - BoxP: for possibly overlapping 2x2 boxes of one colour -> 3
//   - FindP: for each run 1011101 in a row or column -> 40
//   - BalP: for n% of dark modules, rounded down -> 10*(abs(n-50)/5)
func (g *Grid) Penalty() int {
	return g.adjacentPenalty() + g.boxPenalty() + g.finderPenalty() +
		g.balancePenalty()
}

const (
	AdjMin  = 5  // AdjP:  more same-colour neighbours than this
	AdjPP   = 3  // AdjP:  base points
	BoxPP   = 3  // BoxP:  points per box
	FindPP  = 40 // FindP: points per pattern
	BalPP   = 10 // BalP:  10 points
	BalStep = 5  //        for every 5% away from 50%
)

func (g *Grid) adjacentPenalty() int {
	p := 0
	siz := g.size
	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			c := g.At(row, col)
			same := 0
			for r := max(row-1, 0); r <= min(row+1, siz-1); r++ {
				for cc := max(col-1, 0); cc <= min(col+1, siz-1); cc++ {
					if (r != row || cc != col) && g.At(r, cc) == c {
						same++
					}
				}
			}
			if same > AdjMin {
				p += AdjPP + same - AdjMin
			}
		}
	}
	return p
}

func (g *Grid) boxPenalty() int {
	p := 0
	for row := 0; row < g.size-1; row++ {
		for col := 0; col < g.size-1; col++ {
			c := g.At(row, col)
			if g.At(row, col+1) == c && g.At(row+1, col) == c &&
				g.At(row+1, col+1) == c {
				p += BoxPP
			}
		}
	}
	return p
}

var finderRun = [7]Cell{Dark, Light, Dark, Dark, Dark, Light, Dark}

func (g *Grid) finderPenalty() int {
	p := 0
	for i := 0; i < g.size; i++ {
		for j := 0; j+len(finderRun) <= g.size; j++ {
			row, col := true, true
			for k, c := range finderRun {
				row = row && g.At(i, j+k) == c
				col = col && g.At(j+k, i) == c
			}
			if row {
				p += FindPP
			}
			if col {
				p += FindPP
			}
		}
	}
	return p
}

func (g *Grid) balancePenalty() int {
	dark := 0
	for _, c := range g.cells {
		if c == Dark {
			dark++
		}
	}
	pct := 100 * dark / len(g.cells)
	return abs(pct-50) / BalStep * BalPP
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
