// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/mathx/bigint"
)

var addCmd = &cobra.Command{
	Use:   "add <x> <y>",
	Short: "Print the sum x + y",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary((*bigint.Int).Add),
}

var subCmd = &cobra.Command{
	Use:   "sub <x> <y>",
	Short: "Print the difference x - y",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary((*bigint.Int).Sub),
}

var mulCmd = &cobra.Command{
	Use:   "mul <x> <y>",
	Short: "Print the product x * y",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary((*bigint.Int).Mul),
}

var modCmd = &cobra.Command{
	Use:   "mod <x> <y>",
	Short: "Print the remainder of x / y",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary((*bigint.Int).Mod),
}

var divCmd = &cobra.Command{
	Use:   "div <x> <y>",
	Short: "Print the quotient and remainder of x / y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseArgs(args)
		if err != nil {
			return err
		}
		defer startStats(cmd)()
		q := x.Div(y)
		if err := q.Err(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), q)
		fmt.Fprintln(cmd.OutOrStdout(), q.Remainder())
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow <x> <n>",
	Short: "Print x raised to the native non-negative exponent n",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x := bigint.ParseInt(args[0])
		if err := x.Err(); err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		e, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("exponent %q: %w", args[1], err)
		}
		n, err := safecast.Conv[uint](e)
		if err != nil {
			return fmt.Errorf("exponent %q: %w", args[1], err)
		}
		defer startStats(cmd)()
		z := x.Pow(n)
		if err := z.Err(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), z)
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Print -1, 0 or 1 depending on the order of x and y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
		return nil
	},
}

func runBinary(op func(x, y *bigint.Int) *bigint.Int) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		x, y, err := parseArgs(args)
		if err != nil {
			return err
		}
		defer startStats(cmd)()
		z := op(x, y)
		if err := z.Err(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), z)
		return nil
	}
}

func parseArgs(args []string) (x, y *bigint.Int, err error) {
	x = bigint.ParseInt(args[0])
	if err := x.Err(); err != nil {
		return nil, nil, fmt.Errorf("%q: %w", args[0], err)
	}
	y = bigint.ParseInt(args[1])
	if err := y.Err(); err != nil {
		return nil, nil, fmt.Errorf("%q: %w", args[1], err)
	}
	return x, y, nil
}

// startStats installs a counting observer when --stats is set. The returned
// func uninstalls it and reports the totals.
func startStats(cmd *cobra.Command) func() {
	if !showStats {
		return func() {}
	}
	c := new(bigint.Counters)
	prev := bigint.SetObserver(c)
	return func() {
		bigint.SetObserver(prev)
		fmt.Fprint(cmd.ErrOrStderr(), c)
	}
}
