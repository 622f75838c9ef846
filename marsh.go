// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements text encoding/decoding of Ints. There is no binary
// encoding: decimal text is the only persisted form.

package bigint

import "fmt"

// MarshalText implements the encoding.TextMarshaler interface. Error-state
// values marshal as their sentinel text.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It is the
// one place the package writes through its receiver; the decoded value does
// not alias any other Int.
func (z *Int) UnmarshalText(text []byte) error {
	v := ParseInt(string(text))
	if err := v.Err(); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int: %w", text, err)
	}
	*z = *v
	return nil
}
