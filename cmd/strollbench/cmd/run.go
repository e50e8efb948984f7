// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
)

var (
	runEngineName string
	runOps        uint64
	runSeed       uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a randomised operation mix against one heap engine",
	Example: `  strollbench run --engine=drp --ops=1000000 --seed=7
  strollbench run --engine=dbn --ops=50000`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runEngineName, "engine", "hpr", "heap engine to drive: hpr, dpr, ppr, drp, dbn")
	runCmd.Flags().Uint64Var(&runOps, "ops", 100_000, "number of operations to perform")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 1, "PRNG seed")
}

type counters struct {
	inserts, extracts, removes, promotes, demotes, merges uint64
}

// runRun fires a sequence of ops against e: roughly one insert in four,
// and otherwise an even split across extract/remove/promote/demote/merge.
// Ops that find no live node to act on (an empty heap, or an engine that
// doesn't implement the operation) are skipped and not counted.
func runRun(_ *cobra.Command, _ []string) error {
	e, err := newEngine(runEngineName)
	if err != nil {
		return err
	}

	prng := rand.New(rand.NewPCG(runSeed, runSeed^0x9e3779b97f4a7c15))
	var c counters

	start := time.Now()
	for i := uint64(0); i < runOps; i++ {
		if e.empty() || prng.IntN(4) == 0 {
			e.insert(prng.IntN(1 << 24))
			c.inserts++
			continue
		}

		switch prng.IntN(5) {
		case 0:
			if e.extract() {
				c.extracts++
			}
		case 1:
			if e.remove(prng) {
				c.removes++
			}
		case 2:
			if e.promote(prng) {
				c.promotes++
			}
		case 3:
			if e.demote(prng) {
				c.demotes++
			}
		case 4:
			e.mergeScratch(prng, 1+prng.IntN(8))
			c.merges++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("engine:    %s\n", runEngineName)
	fmt.Printf("ops:       %d\n", runOps)
	fmt.Printf("elapsed:   %v\n", elapsed)
	fmt.Printf("remaining: %d\n", e.len())
	fmt.Printf("inserts:   %d\n", c.inserts)
	fmt.Printf("extracts:  %d\n", c.extracts)
	fmt.Printf("removes:   %d\n", c.removes)
	fmt.Printf("promotes:  %d\n", c.promotes)
	fmt.Printf("demotes:   %d\n", c.demotes)
	fmt.Printf("merges:    %d\n", c.merges)

	return nil
}
