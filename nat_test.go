// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"strconv"
	"testing"
)

func TestNatNorm(t *testing.T) {
	td := []struct {
		in, out nat
	}{
		{nil, nat{0}},
		{nat{}, nat{0}},
		{nat{0}, nat{0}},
		{nat{0, 0, 0}, nat{0}},
		{nat{1}, nat{1}},
		{nat{1, 0}, nat{1}},
		{nat{0, 1, 0, 0}, nat{0, 1}},
	}
	for i, d := range td {
		if z := d.in.norm(); z.cmp(d.out) != 0 || len(z) != len(d.out) {
			t.Errorf("#%d got %v; want %v", i, z, d.out)
		}
	}
}

var natCmpTests = []struct {
	x, y nat
	r    int
}{
	{nat{0}, nat{0}, 0},
	{nat{0}, nat{1}, -1},
	{nat{1}, nat{0}, 1},
	{nat{1}, nat{1}, 0},
	{nat{0, _M}, nat{1}, 1},
	{nat{1}, nat{0, _M}, -1},
	{nat{1, _M}, nat{0, _M}, 1},
	{nat{0, _M}, nat{1, _M}, -1},
	{nat{16, 571956, 8794, 68}, nat{837, 9146, 1, 754489}, -1},
	{nat{34986, 41, 105, 1957}, nat{56, 7458, 104, 1957}, 1},
}

func TestNatCmp(t *testing.T) {
	for i, a := range natCmpTests {
		if r := a.x.cmp(a.y); r != a.r {
			t.Errorf("#%d got r = %v; want %v", i, r, a.r)
		}
	}
}

var natSumTests = []struct {
	z, x, y nat
}{
	{nat{0}, nat{0}, nat{0}},
	{nat{1}, nat{0}, nat{1}},
	{nat{1111111110}, nat{123456789}, nat{987654321}},
	{nat{0, 0, 0, 1}, nat{0}, nat{0, 0, 0, 1}},
	{nat{0, 0, 0, 1111111110}, nat{0, 0, 0, 123456789}, nat{0, 0, 0, 987654321}},
	{nat{0, 0, 1}, nat{_M, _M}, nat{1}},
	{nat{_M - 1, _M, 1}, nat{_M, _M}, nat{_M, _M}},
}

func TestNatAddSub(t *testing.T) {
	for i, a := range natSumTests {
		if z := a.x.add(a.y); z.cmp(a.z) != 0 {
			t.Errorf("#%d x.add(y) got %v; want %v", i, z, a.z)
		}
		if z := a.y.add(a.x); z.cmp(a.z) != 0 {
			t.Errorf("#%d y.add(x) got %v; want %v", i, z, a.z)
		}
		if x := a.z.sub(a.y); x.cmp(a.x) != 0 {
			t.Errorf("#%d z.sub(y) got %v; want %v", i, x, a.x)
		}
		if y := a.z.sub(a.x); y.cmp(a.y) != 0 {
			t.Errorf("#%d z.sub(x) got %v; want %v", i, y, a.y)
		}
	}
}

func TestNatSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("x.sub(y) with x < y did not panic")
		}
	}()
	nat{1}.sub(nat{2})
}

var natMulTests = []struct {
	x, y, z nat
}{
	{nat{0}, nat{0}, nat{0}},
	{nat{991}, nat{0}, nat{0}},
	{nat{991}, nat{991}, nat{982081}},
	{nat{54325}, nat{543}, nat{29498475}},
	{nat{0, 1}, nat{0, 1}, nat{0, 0, 1}},
	{nat{_M}, nat{_M}, nat{1, _M - 1}},
	{nat{_M, _M}, nat{_M, _M}, nat{1, 0, _M - 1, _M}},
}

func TestNatMul(t *testing.T) {
	for i, a := range natMulTests {
		if z := a.x.mul(a.y); z.cmp(a.z) != 0 {
			t.Errorf("#%d x.mul(y) got %v; want %v", i, z, a.z)
		}
		if z := a.y.mul(a.x); z.cmp(a.z) != 0 {
			t.Errorf("#%d y.mul(x) got %v; want %v", i, z, a.z)
		}
	}
}

func TestNatDivW(t *testing.T) {
	td := []struct {
		x nat
		y Word
		q nat
		r Word
	}{
		{nat{0}, 1, nat{0}, 0},
		{nat{7321}, 153, nat{47}, 130},
		{nat{0, 1}, 2, nat{1 << (_W - 1)}, 0},
		{nat{1, 1}, 2, nat{1 << (_W - 1)}, 1},
		{nat{0, 1}, 1000000000, nat{4}, 294967296},
	}
	for i, d := range td {
		q, r := d.x.divW(d.y)
		if q.cmp(d.q) != 0 || r != d.r {
			t.Errorf("#%d got %v rem %d; want %v rem %d", i, q, r, d.q, d.r)
		}
	}
}

// TestNatDiv feeds random multi-limb operands through the factored-base long
// division and cross-checks with q*y + r == x and r < y.
func TestNatDiv(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := nat(rndV(1 + rnd.Intn(6))).norm()
		y := nat(rndV(2 + rnd.Intn(3))).norm()
		if y.isZero() {
			continue
		}
		q, r, _ := x.div(y)
		if r.cmp(y) >= 0 {
			t.Fatalf("%v.div(%v): remainder %v >= divisor", x, y, r)
		}
		if back := q.mul(y).add(r); back.cmp(x) != 0 {
			t.Fatalf("%v.div(%v) = %v rem %v; product check got %v", x, y, q, r, back)
		}
	}
}

func TestNatDivSmallCases(t *testing.T) {
	td := []struct {
		x, y, q, r nat
	}{
		{nat{0}, nat{0, 1}, nat{0}, nat{0}},
		{nat{5}, nat{0, 1}, nat{0}, nat{5}},
		{nat{0, 1}, nat{0, 1}, nat{1}, nat{0}},
		{nat{1, 1}, nat{0, 1}, nat{1}, nat{1}},
		{nat{_M, _M, _M}, nat{_M, _M}, nat{0, 1}, nat{_M}},
	}
	for i, d := range td {
		q, r, _ := d.x.div(d.y)
		if q.cmp(d.q) != 0 || r.cmp(d.r) != 0 {
			t.Errorf("#%d got %v rem %v; want %v rem %v", i, q, r, d.q, d.r)
		}
	}
}

func TestNatUtoa(t *testing.T) {
	td := []struct {
		x nat
		s string
	}{
		{nat{0}, "0"},
		{nat{517}, "517"},
		{nat{999999999}, "999999999"},
		{nat{1000000000}, "1000000000"},
		{nat{0, 1}, "4294967296"},
		{nat{1, 1}, "4294967297"},
		{nat{_M, _M}, "18446744073709551615"},
	}
	for i, d := range td {
		if s := string(d.x.utoa()); s != d.s {
			t.Errorf("#%d got %q; want %q", i, s, d.s)
		}
	}
}

func TestNatSetUint64(t *testing.T) {
	for i := 0; i < 1000; i++ {
		u := rnd.Uint64()
		z := nat(nil).setUint64(u)
		if s := string(z.utoa()); s != strconv.FormatUint(u, 10) {
			t.Fatalf("setUint64(%d) renders as %s", u, s)
		}
	}
}

func TestNatMulAddW(t *testing.T) {
	// decimal digit assembly: 7321 = ((7*10+3)*10+2)*10+1
	z := nat{0}
	for _, d := range []Word{7, 3, 2, 1} {
		z = z.mulAddW(10, d)
	}
	if z.cmp(nat{7321}) != 0 {
		t.Fatalf("got %v; want [7321]", z)
	}
	// carry across limbs
	z = nat{_M}.mulAddW(2, 1)
	if z.cmp(nat{_M, 1}) != 0 {
		t.Fatalf("got %v; want [%d 1]", z, Word(_M))
	}
}
