// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc is a command-line front end for the bigint package.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bigcalc",
	Short:         "Arbitrary-precision integer calculator",
	Long:          `bigcalc evaluates arithmetic on signed integers of unbounded magnitude.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var showStats bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "print operation counters to stderr")
	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, modCmd, powCmd, cmpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}
}
