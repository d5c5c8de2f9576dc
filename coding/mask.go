// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"sync"
)

// A Mask is a QR mask pattern, from 0 to 7.
type Mask int

// NumMasks is the number of mask patterns.
const NumMasks = 8

func (m Mask) String() string { return strconv.Itoa(int(m)) }

// IsValid reports whether m is a mask pattern.
func (m Mask) IsValid() bool { return 0 <= m && m < NumMasks }

// Invert reports whether mask m inverts the module at row, col.
//
// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
func (m Mask) Invert(row, col int) bool {
	switch m {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return row*col%2+row*col%3 == 0
	case 6:
		return (row*col%2+row*col%3)%2 == 0
	case 7:
		return (row*col%3+(row+col)%2)%2 == 0
	}
	panic("qr: invalid mask " + m.String())
}

// Evaluate builds a grid from codewords with each mask and returns
// the mask with the lowest penalty, its grid, and the penalties of all
// masks.  Of masks with equal penalties the lowest numbered wins.
//
// The grids are built concurrently, each in its own goroutine.
func (p *Plan) Evaluate(codewords []byte) (Mask, *Grid, [NumMasks]int) {
	var (
		grids [NumMasks]*Grid
		pen   [NumMasks]int
		wg    sync.WaitGroup
	)
	wg.Add(NumMasks)
	for m := range grids {
		go func(m int) {
			defer wg.Done()
			g := p.Grid(codewords, Mask(m))
			grids[m], pen[m] = g, g.Penalty()
		}(m)
	}
	wg.Wait()

	best := 0
	for m := 1; m < NumMasks; m++ {
		if pen[m] < pen[best] {
			best = m
		}
	}
	return Mask(best), grids[best], pen
}
