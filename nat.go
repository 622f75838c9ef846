// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// A nat is an unsigned integer x of the form
//
//	x = x[n-1]*_B**(n-1) + x[n-2]*_B**(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B, stored least-significant limb first.
//
// A nat is normalized if it contains no limbs above the most significant
// nonzero one. The normalized representation of 0 is nat{0}: exactly one zero
// limb, never an empty slice. Operands of the functions below must be
// normalized and results are returned normalized.
type nat []Word

// norm trims high zero limbs down to the canonical form.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setUint64(x uint64) nat {
	if x == 0 {
		return append(z.make(0)[:0], 0)
	}
	z = z.make(0)[:0]
	for ; x > 0; x >>= _W {
		z = append(z, Word(x)&_M)
	}
	return z
}

func (x nat) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

// cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
// Canonical form makes the limb count decisive before any limb is compared.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add returns the sum x + y.
func (x nat) add(y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return y.add(x)
	}
	z := make(nat, m+1)
	c := addVV(z[:n], x[:n], y)
	c = addVW(z[n:m], x[n:], c)
	z[m] = c
	return z.norm()
}

// sub returns the difference x - y; x must be >= y.
func (x nat) sub(y nat) nat {
	m, n := len(x), len(y)
	z := make(nat, m)
	b := subVV(z[:n], x[:n], y)
	b = subVW(z[n:], x[n:], b)
	if b != 0 {
		panic("bigint: nat underflow")
	}
	return z.norm()
}

// mul returns the product x * y using schoolbook double accumulation.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+len(y))
	for i, d := range x {
		if d != 0 {
			z[len(y)+i] = addMulVVW(z[i:len(y)+i], y, d)
		}
	}
	return z.norm()
}

// mulAddW returns x*f + d for single-Word f and d.
func (x nat) mulAddW(f, d Word) nat {
	z := make(nat, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, f, d)
	return z.norm()
}

// divW returns the quotient and remainder of x divided by a single nonzero
// limb y, scanning limbs most-significant first with a native running
// remainder.
func (x nat) divW(y Word) (q nat, r Word) {
	q = make(nat, len(x))
	r = divWVW(q, x, 0, y)
	return q.norm(), r
}

// div returns the quotient and remainder of x / y, along with the number of
// magnitude subtractions performed. y must not be zero.
//
// Single-limb divisors take the native fast path (divW). For larger divisors,
// each dividend limb is consumed through the prime factorization of _B: for
// every factor f the running sub-base shrinks by f, the matching sub-digit of
// the limb is injected into the running remainder, and the divisor is
// subtracted while it fits, the subtraction count becoming that sub-digit's
// contribution to the quotient limb. This bounds the per-limb search by the
// factor sizes instead of _B.
func (x nat) div(y nat) (q, r nat, iter int) {
	if y.isZero() {
		panic("bigint: nat division by zero")
	}
	if x.cmp(y) < 0 {
		return nat{0}, nat(nil).set(x), 0
	}
	if len(y) == 1 {
		qw, rw := x.divW(y[0])
		return qw, nat{rw}, len(x)
	}
	q = make(nat, len(x))
	r = nat{0}
	for i := len(x) - 1; i >= 0; i-- {
		limb := x[i]
		var qw Word
		subBase := Word(_B)
		for _, f := range baseFactors {
			subBase /= f
			d := limb / subBase % f
			r = r.mulAddW(f, d)
			var n Word
			for r.cmp(y) >= 0 {
				r = r.sub(y)
				n++
				iter++
			}
			qw = qw*f + n
		}
		q[i] = qw
	}
	return q.norm(), r, iter
}

// utoa returns the decimal representation of x. Since _B is not decimal
// aligned, digits are peeled off through the fast divider, pow10MaxDigits at
// a time.
func (x nat) utoa() []byte {
	if x.isZero() {
		return []byte{'0'}
	}
	// 10 digits per limb is a safe overestimate: _B < 10**10.
	buf := make([]byte, len(x)*10)
	i := len(buf)
	q := nat(nil).set(x)
	for !q.isZero() {
		var r Word
		q, r = q.divW(pow10Max)
		if q.isZero() {
			// most significant group, no zero padding
			for ; r > 0; r /= 10 {
				i--
				buf[i] = byte(r%10) + '0'
			}
		} else {
			for k := 0; k < pow10MaxDigits; k++ {
				i--
				buf[i] = byte(r%10) + '0'
				r /= 10
			}
		}
	}
	return buf[i:]
}
