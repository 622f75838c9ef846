// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"strings"
)

// An Op identifies a completed engine operation reported to an Observer.
type Op byte

const (
	OpParse Op = iota
	OpCmp
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	numOps
)

var opNames = [numOps]string{"parse", "cmp", "add", "sub", "mul", "div", "pow"}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// An Observer receives a notification after each completed operation,
// together with a rough measure of the work performed (limbs touched for
// add/sub/mul, magnitude subtractions for div, squaring steps for pow,
// characters consumed for parse). The engine only ever writes to an
// Observer, never reads from one, and correctness does not depend on it.
type Observer interface {
	Observe(op Op, iterations int)
}

var observer Observer

// SetObserver installs o as the process-wide instrumentation sink and
// returns the previous one. Passing nil disables instrumentation. Like the
// rest of the package, the hook is single-threaded: install it before
// computing, not concurrently with it.
func SetObserver(o Observer) Observer {
	prev := observer
	observer = o
	return prev
}

func observe(op Op, iterations int) {
	if observer != nil {
		observer.Observe(op, iterations)
	}
}

// Counters is an Observer accumulating per-operation call and iteration
// totals.
type Counters struct {
	Calls      [numOps]int
	Iterations [numOps]int
}

func (c *Counters) Observe(op Op, iterations int) {
	c.Calls[op]++
	c.Iterations[op] += iterations
}

// String lists the nonzero counters, one operation per line.
func (c *Counters) String() string {
	var b strings.Builder
	for op := Op(0); op < numOps; op++ {
		if c.Calls[op] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d calls, %d iterations\n", op, c.Calls[op], c.Iterations[op])
	}
	return b.String()
}
