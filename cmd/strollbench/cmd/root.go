// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

// Package cmd implements strollbench, a micro-benchmark driver for the
// stroll heap engines.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strollbench",
	Short: "Micro-benchmark driver for the stroll heap engines",
	Long: `strollbench drives a randomised mix of insert/extract/merge/remove/
promote/demote operations against one of stroll's five heap engines and
reports elapsed time and per-operation work counters.`,
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
