// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements decimal text conversion for Ints.

package bigint

// Sentinel text rendered by String and Append for error-state values.
const (
	invalidText        = "Invalid Number"
	divisionByZeroText = "Invalid Number - Division By Zero"
)

// ParseInt interprets s as a decimal integer with an optional leading "+" or
// "-". A malformed s, including an empty digit string, yields a value in the
// InvalidFormat state; no partial result survives.
func ParseInt(s string) *Int {
	z := &Int{abs: nat{0}}
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return errInt(invalidFormat)
	}
	// Collect digits in groups of up to pow10MaxDigits and fold each group
	// in with a single multiply-add; the limb base is not decimal aligned,
	// so assembly goes through the engine's own arithmetic.
	var group Word
	n := uint(0)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return errInt(invalidFormat)
		}
		group = group*10 + Word(ch-'0')
		n++
		if n == pow10MaxDigits {
			z.abs = z.abs.mulAddW(pow10Max, group)
			group, n = 0, 0
		}
	}
	if n > 0 {
		z.abs = z.abs.mulAddW(pow10(n), group)
	}
	z.neg = neg && !z.abs.isZero()
	observe(OpParse, len(s))
	return z
}

// ParseDigits builds an Int from a sequence of single decimal digit tokens,
// optionally preceded by a "+" or "-" token as its first element. Any other
// token yields a value in the InvalidFormat state.
func ParseDigits(tokens []string) *Int {
	i := 0
	neg := false
	if len(tokens) > 0 && (tokens[0] == "+" || tokens[0] == "-") {
		neg = tokens[0] == "-"
		i = 1
	}
	if i == len(tokens) {
		return errInt(invalidFormat)
	}
	z := &Int{abs: nat{0}}
	for ; i < len(tokens); i++ {
		t := tokens[i]
		if len(t) != 1 || t[0] < '0' || t[0] > '9' {
			return errInt(invalidFormat)
		}
		z.abs = z.abs.mulAddW(10, Word(t[0]-'0'))
	}
	z.neg = neg && !z.abs.isZero()
	observe(OpParse, len(tokens))
	return z
}

// String returns the decimal representation of x: an optional leading "-"
// followed by digits without superfluous leading zeros. Zero is rendered as
// "0" with no sign. Error-state values render their fixed sentinel text
// verbatim instead of digits.
func (x *Int) String() string {
	return string(x.Append(nil))
}

// Append appends the text of x.String() to buf and returns the extended
// buffer.
func (x *Int) Append(buf []byte) []byte {
	switch x.st {
	case invalidFormat:
		return append(buf, invalidText...)
	case divisionByZero:
		return append(buf, divisionByZeroText...)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return append(buf, x.abs.utoa()...)
}
