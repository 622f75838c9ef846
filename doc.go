// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic.

An Int represents an integer of unbounded magnitude as a sign and a
little-endian Word slice of base 2**32 limbs. The base is the largest power
of two for which a single limb product plus its carries still fits exactly in
native 64-bit arithmetic, so all limb operations are performed with plain
integer arithmetic and no double-word primitives.

Ints are values. Every operation takes its operands read-only and returns a
freshly constructed result:

	a := bigint.New(99)
	b := bigint.ParseInt("10001")
	sum := a.Add(b) // "10100"; a and b are unchanged

Operations chain naturally:

	bigint.New(2).Pow(32).Sub(bigint.New(1)) // "4294967295"

Division produces a quotient and a remainder. QuoRem returns both; Div
returns the quotient with the remainder attached to it:

	q := bigint.New(7321).Div(bigint.New(153))
	q.String()             // "47"
	q.Remainder().String() // "130"

Division truncates toward zero and a nonzero remainder takes the dividend's
sign.

Errors are data, not control flow. Constructing an Int from malformed text or
dividing by zero yields a value in a terminal error state rather than a panic
or a second return value; such states are sticky and propagate through every
further operation. Err reports the state as one of the package sentinel
errors, and error-state values render fixed sentinel text:

	bigint.ParseInt("51s7").String()             // "Invalid Number"
	bigint.New(5).Div(bigint.New(0)).String()    // "Invalid Number - Division By Zero"

The package is a synchronous, single-threaded value-computation library: no
goroutines, no I/O, no shared mutable state. Because operands are never
mutated, constructed Ints may be read concurrently.

An optional Observer hook receives per-operation work counts; see
SetObserver. It is write-only instrumentation and does not affect results.
*/
package bigint
