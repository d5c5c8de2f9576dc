// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256).  Coefficients are ordered from
// the highest degree down, so the degree of p is len(p)-1.
type Poly []byte

// NewPoly returns the polynomial with coefficients c, leading zero
// coefficients removed, multiplied by x^shift.  The result does not
// share memory with c.
func NewPoly(c []byte, shift int) Poly {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	p := make(Poly, len(c)-i+shift)
	copy(p, c[i:])
	return p
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// PolyMul returns the product of p and q.
func (f *Field) PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r
}

// Mod returns the remainder of p divided by d.  The remainder has no
// leading zero coefficients and may be shorter than d.Degree().
func (f *Field) Mod(p, d Poly) Poly {
	d = NewPoly(d, 0)
	if len(d) == 0 {
		panic("gf256: division by zero")
	}
	inv := f.Inv(d[0])
	r := NewPoly(p, 0)
	for len(r) >= len(d) {
		q := f.Mul(r[0], inv)
		for i, c := range d {
			r[i] ^= f.Mul(c, q)
		}
		for len(r) > 0 && r[0] == 0 {
			r = r[1:]
		}
	}
	return r
}

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x - α^i) for i from 0 to n-1.  Generators are cached;
// the returned Poly must not be modified.
func (f *Field) Generator(n int) Poly {
	f.gmu.Lock()
	defer f.gmu.Unlock()
	if g, ok := f.gen[n]; ok {
		return g
	}
	g := Poly{1}
	for i := 0; i < n; i++ {
		g = f.PolyMul(g, Poly{1, f.Exp(i)})
	}
	f.gen[n] = g
	return g
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// ECC writes to check the error correction bytes for data,
// the remainder of data·xᶜ divided by the generator polynomial,
// padded with leading zeros to c bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	rem := rs.f.Mod(NewPoly(data, rs.c), rs.gen)
	pad := rs.c - len(rem)
	clear(check[:pad])
	copy(check[pad:rs.c], rem)
}
