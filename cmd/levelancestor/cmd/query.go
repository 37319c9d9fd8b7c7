// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	queryVariant  string
	queryCapacity int
	queryTreeFile string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Answer LA(v, d) queries read from stdin",
	Long: `query implements the stdin contract:

  - unless --tree-file is given, the first line is a whitespace-separated
    parent array (parent[0] must be -1); the tree is built immediately
  - every following line is "v d"; the query result is printed, one per
    line
  - the loop terminates, with exit code 0, on the first line that does
    not split into exactly two whitespace-separated tokens (including
    EOF)`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryVariant, "variant", "optimal",
		"implementation: table, jump, ladder, jumpladder, optimal")
	queryCmd.Flags().IntVar(&queryCapacity, "capacity", 0,
		"capacity cap forwarded to the table variant (0 selects its default)")
	queryCmd.Flags().StringVar(&queryTreeFile, "tree-file", "",
		"YAML tree description, read instead of the stdin parent-array line")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	in.Buffer(make([]byte, 64*1024), 16*1024*1024)
	out := cmd.OutOrStdout()

	var parent []int
	if queryTreeFile != "" {
		p, err := loadTreeFile(queryTreeFile)
		if err != nil {
			return err
		}
		parent = p
	} else {
		if !in.Scan() {
			return nil
		}
		p, err := parseParentLine(in.Text())
		if err != nil {
			return err
		}
		parent = p
	}

	la, err := buildVariant(queryVariant, parent, queryCapacity)
	if err != nil {
		return err
	}

	for in.Scan() {
		v, d, ok := parseQueryLine(in.Text())
		if !ok {
			return nil
		}
		fmt.Fprintln(out, la.Query(v, d))
	}

	return nil
}

func parseParentLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	parent := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parent array token %q: %w", f, err)
		}
		parent[i] = n
	}
	return parent, nil
}

func parseQueryLine(line string) (v, d int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	var err error
	if v, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, false
	}
	if d, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, false
	}
	return v, d, true
}
