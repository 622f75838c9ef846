// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the word-level arithmetic primitives that the nat type
// is built on.

package bigint

// A Word is a single limb of a magnitude. Limb values are kept in [0, _B);
// the upper half of the word is headroom for carries and single products.
type Word uint64

const (
	_W = 32      // limb width in bits
	_B = 1 << _W // limb base
	_M = _B - 1  // limb mask
)

// _B is the largest power of two for which a full limb product plus carries
// is still exact in a Word: (_B-1)*(_B-1) + 2*(_B-1) == 1<<64 - 1. All
// primitives below rely on this bound and use only plain uint64 arithmetic.

// baseFactors is the prime factorization of _B in the order consumed by the
// long-division inner loop, most general first. For _B = 1<<32 this is
// thirty-two 2s; computing it keeps the divider correct should the limb
// width change.
var baseFactors = factorize(_B)

func factorize(n Word) []Word {
	var fs []Word
	for p := Word(2); p*p <= n; p++ {
		for n%p == 0 {
			fs = append(fs, p)
			n /= p
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}
	return fs
}

var pow10tab = [...]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// pow10Max is the largest power of ten below _B; decimal conversion moves
// pow10MaxDigits digits per division step.
const (
	pow10Max       = 1000000000
	pow10MaxDigits = 9
)

func pow10(n uint) Word {
	return pow10tab[n]
}

// addVV sets z = x + y and returns the final carry.
// z, x and y must have the same length.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		s := x[i] + y[i] + c
		z[i] = s & _M
		c = s >> _W
	}
	return
}

// addVW sets z = x + y for a single-Word y and returns the final carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		s := x[i] + c
		z[i] = s & _M
		c = s >> _W
	}
	return
}

// subVV sets z = x - y and returns the final borrow.
// z, x and y must have the same length.
func subVV(z, x, y []Word) (b Word) {
	for i := range z {
		d := x[i] + _B - y[i] - b
		z[i] = d & _M
		b = 1 - d>>_W
	}
	return
}

// subVW sets z = x - y for a single-Word y and returns the final borrow.
func subVW(z, x []Word, y Word) (b Word) {
	b = y
	for i := range z {
		d := x[i] + _B - b
		z[i] = d & _M
		b = 1 - d>>_W
	}
	return
}

// mulAddVWW sets z = x*y + r and returns the final carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		t := x[i]*y + c
		z[i] = t & _M
		c = t >> _W
	}
	return
}

// addMulVVW sets z += x*y and returns the final carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range x {
		t := z[i] + x[i]*y + c
		z[i] = t & _M
		c = t >> _W
	}
	return
}

// divWVW sets z = (r*_B**len(x) + x) / y and returns the final remainder.
// y must be a nonzero limb value; the running remainder stays below y, so
// r*_B + x[i] never overflows a Word.
func divWVW(z, x []Word, r, y Word) Word {
	for i := len(z) - 1; i >= 0; i-- {
		t := r<<_W | x[i]
		z[i] = t / y
		r = t % y
	}
	return r
}
