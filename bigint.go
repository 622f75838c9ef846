// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"errors"
	"math"
)

// Error kinds reported by Err. They are sticky: once a value is in an error
// state, every operation involving it yields a result in the same state.
var (
	ErrInvalidFormat  = errors.New("bigint: invalid number format")
	ErrDivisionByZero = errors.New("bigint: division by zero")
)

// A state tags an Int as a usable number or as one of the two terminal error
// kinds. Error-state values carry no magnitude.
type state byte

const (
	valid state = iota
	invalidFormat
	divisionByZero
)

// An Int is an arbitrary-precision signed integer.
//
// Ints are values: no operation mutates its receiver or an operand, every
// arithmetic result is freshly constructed, and limb storage is never shared
// between instances. It is therefore safe to reuse an Int across chained
// calls, to pass the same Int as both receiver and operand, and to read one
// Int from multiple goroutines.
//
// Instead of returning a (value, error) pair, constructors and operations
// return an Int that may be in an error state; see Err. Errors are data, not
// control flow: no operation panics on bad input.
//
// The zero Int value is not canonical; obtain Ints from New, ParseInt,
// ParseDigits or an operation on those.
type Int struct {
	neg bool // sign; never set for zero
	abs nat  // magnitude, least-significant limb first
	st  state
	rem *Int // remainder attached by Div; nil reads as zero
}

func errInt(st state) *Int {
	return &Int{st: st}
}

// New returns an Int set to x. The magnitude is assembled directly from the
// native value, limb by limb; no string conversion is involved.
func New(x int64) *Int {
	z := &Int{abs: nat{0}}
	if x == 0 {
		return z
	}
	z.neg = x < 0
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	z.abs = nat(nil).setUint64(u)
	return z
}

// Copy returns a deep copy of x, including any attached remainder.
func (x *Int) Copy() *Int {
	z := &Int{neg: x.neg, st: x.st}
	if x.st == valid {
		z.abs = nat(nil).set(x.abs)
	}
	if x.rem != nil {
		z.rem = x.rem.Copy()
	}
	return z
}

// Err reports the error state of x: nil for a usable number, otherwise
// ErrInvalidFormat or ErrDivisionByZero.
func (x *Int) Err() error {
	switch x.st {
	case invalidFormat:
		return ErrInvalidFormat
	case divisionByZero:
		return ErrDivisionByZero
	}
	return nil
}

// Valid reports whether x carries a usable numeric value.
func (x *Int) Valid() bool {
	return x.st == valid
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
// Sign returns 0 for error-state values; check Err first.
func (x *Int) Sign() int {
	if x.st != valid || x.abs.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is the number zero.
func (x *Int) IsZero() bool {
	return x.st == valid && x.abs.isZero()
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.st != valid {
		return errInt(x.st)
	}
	return &Int{abs: nat(nil).set(x.abs)}
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.st != valid {
		return errInt(x.st)
	}
	return &Int{
		neg: !x.neg && !x.abs.isZero(),
		abs: nat(nil).set(x.abs),
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// A nil operand compares equal (compare-to-self, matching the permissive
// chaining contract), as does an error-state operand.
func (x *Int) Cmp(y *Int) int {
	if y == nil || x == y {
		return 0
	}
	if x.st != valid || y.st != valid {
		return 0
	}
	observe(OpCmp, 1)
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := x.abs.cmp(y.abs)
	if x.neg {
		r = -r
	}
	return r
}

// Lt reports whether x < y.
func (x *Int) Lt(y *Int) bool { return x.Cmp(y) < 0 }

// Lte reports whether x <= y.
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }

// Eq reports whether x == y.
func (x *Int) Eq(y *Int) bool { return x.Cmp(y) == 0 }

// Gte reports whether x >= y.
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// Gt reports whether x > y.
func (x *Int) Gt(y *Int) bool { return x.Cmp(y) > 0 }

// Add returns the sum x + y. Add(nil) is a no-op returning a copy of x.
//
// Opposite-sign addition is magnitude subtraction carrying the sign of the
// larger magnitude; this routing mirrors Sub and must stay in sync with it,
// in particular on the zero-crossing case.
func (x *Int) Add(y *Int) *Int {
	if y == nil {
		return x.Copy()
	}
	if x.st != valid {
		return errInt(x.st)
	}
	if y.st != valid {
		return errInt(y.st)
	}
	z := &Int{}
	if x.neg == y.neg {
		z.neg = x.neg
		z.abs = x.abs.add(y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		z.neg = x.neg
		z.abs = x.abs.sub(y.abs)
	} else {
		z.neg = y.neg
		z.abs = y.abs.sub(x.abs)
	}
	if z.abs.isZero() {
		z.neg = false
	}
	observe(OpAdd, len(x.abs)+len(y.abs))
	return z
}

// Sub returns the difference x - y. Sub(nil) is a no-op returning a copy
// of x.
//
// Opposite-sign subtraction is magnitude addition carrying x's sign; the
// like-signed case compares magnitudes first and flips the sign when the
// subtrahend is larger.
func (x *Int) Sub(y *Int) *Int {
	if y == nil {
		return x.Copy()
	}
	if x.st != valid {
		return errInt(x.st)
	}
	if y.st != valid {
		return errInt(y.st)
	}
	z := &Int{}
	if x.neg != y.neg {
		z.neg = x.neg
		z.abs = x.abs.add(y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		z.neg = x.neg
		z.abs = x.abs.sub(y.abs)
	} else {
		z.neg = !x.neg
		z.abs = y.abs.sub(x.abs)
	}
	if z.abs.isZero() {
		z.neg = false
	}
	observe(OpSub, len(x.abs)+len(y.abs))
	return z
}

// Mul returns the product x * y. A zero operand short-circuits to a fresh
// canonical zero without limb arithmetic.
func (x *Int) Mul(y *Int) *Int {
	if y == nil {
		return x.Copy()
	}
	if x.st != valid {
		return errInt(x.st)
	}
	if y.st != valid {
		return errInt(y.st)
	}
	if x.abs.isZero() || y.abs.isZero() {
		return New(0)
	}
	z := &Int{
		neg: x.neg != y.neg,
		abs: x.abs.mul(y.abs),
	}
	observe(OpMul, len(x.abs)*len(y.abs))
	return z
}

// QuoRem returns the quotient and remainder of x / y. Division truncates
// toward zero: q*y + r == x with 0 <= |r| < |y|, and a nonzero remainder
// takes x's sign. A zero divisor yields both results in the DivisionByZero
// state; a zero dividend yields zero quotient and remainder regardless of y.
func (x *Int) QuoRem(y *Int) (q, r *Int) {
	if y == nil {
		return x.Copy(), New(0)
	}
	if x.st != valid {
		return errInt(x.st), errInt(x.st)
	}
	if y.st != valid {
		return errInt(y.st), errInt(y.st)
	}
	if y.abs.isZero() {
		return errInt(divisionByZero), errInt(divisionByZero)
	}
	if x.abs.isZero() {
		return New(0), New(0)
	}
	qa, ra, iter := x.abs.div(y.abs)
	q = &Int{neg: x.neg != y.neg && !qa.isZero(), abs: qa}
	r = &Int{neg: x.neg && !ra.isZero(), abs: ra}
	observe(OpDiv, iter)
	return q, r
}

// Div returns the quotient of x / y. The remainder of the same division is
// attached to the returned quotient and can be read with Remainder; it is
// overwritten by nothing and shared with nothing.
func (x *Int) Div(y *Int) *Int {
	q, r := x.QuoRem(y)
	q.rem = r
	return q
}

// Mod returns the remainder of x / y: the division is performed, the
// quotient discarded.
func (x *Int) Mod(y *Int) *Int {
	_, r := x.QuoRem(y)
	return r
}

// Remainder returns the remainder attached to x by the Div call that
// produced it, or zero if x was not produced by Div.
func (x *Int) Remainder() *Int {
	if x.rem == nil {
		return New(0)
	}
	return x.rem.Copy()
}

// Pow returns x**n for a native non-negative exponent, by binary
// square-and-multiply. Pow(0) is 1, including 0**0; Pow(1) returns a copy
// of x.
func (x *Int) Pow(n uint) *Int {
	if x.st != valid {
		return errInt(x.st)
	}
	if n == 0 {
		return New(1)
	}
	if n == 1 {
		return x.Copy()
	}
	z := New(1)
	b := &Int{neg: x.neg, abs: nat(nil).set(x.abs)}
	iter := 0
	for n > 0 {
		if n&1 != 0 {
			z = z.Mul(b)
			n--
		} else {
			b = b.Mul(b)
			n >>= 1
		}
		iter++
	}
	observe(OpPow, iter)
	return z
}

// Int64 returns the int64 value of x and whether the conversion is exact.
func (x *Int) Int64() (int64, bool) {
	if x.st != valid || len(x.abs) > 2 {
		return 0, false
	}
	var u uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		u = u<<_W | uint64(x.abs[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}
