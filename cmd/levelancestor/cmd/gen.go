// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
)

var (
	genN    int
	genSeed uint64
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a random parent array of size N to stdout",
	Long: `gen emits a whitespace-separated parent array, node i>0 attached
under a uniformly random existing node in [0, i), suitable as the first
line of levelancestor query's stdin contract.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&genN, "n", 100, "number of nodes")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 42, "PCG seed")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genN <= 0 {
		return fmt.Errorf("gen: --n must be positive, got %d", genN)
	}

	prng := rand.New(rand.NewPCG(genSeed, genSeed))
	parent := make([]int, genN)
	parent[0] = -1
	for i := 1; i < genN; i++ {
		parent[i] = prng.IntN(i)
	}

	out := cmd.OutOrStdout()
	for i, p := range parent {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, p)
	}
	fmt.Fprintln(out)

	return nil
}
