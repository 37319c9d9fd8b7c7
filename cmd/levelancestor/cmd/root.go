// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "levelancestor",
	Short: "Level Ancestor queries over a rooted tree",
	Long: `levelancestor answers LA(v, d): the ancestor of node v at depth d.

Reads a tree and a stream of (v, d) queries, per the contract in the
query subcommand's help text.`,
}

// Execute runs the root command; it is the single entry point called
// from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
