// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// runQueryWithInput wires a fresh query command against in-memory
// stdin/stdout, the same harness shape cobra.Command exposes for
// SetIn/SetOut, avoiding any dependency on the real os.Stdin/os.Stdout.
func runQueryWithInput(t *testing.T, variant, input string) string {
	t.Helper()

	cmd := &cobra.Command{RunE: runQuery}
	cmd.Flags().StringVar(&queryVariant, "variant", variant, "")
	cmd.Flags().IntVar(&queryCapacity, "capacity", 0, "")
	cmd.Flags().StringVar(&queryTreeFile, "tree-file", "", "")
	queryVariant = variant
	queryCapacity = 0
	queryTreeFile = ""

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("runQuery: %v", err)
	}
	return out.String()
}

func TestQueryGoldenChain(t *testing.T) {
	// chain of 6 nodes: 0 is root, each i>0 points at i-1
	input := "-1 0 1 2 3 4\n5 0\n5 3\n5 5\nbye\n"
	want := "0\n3\n5\n"

	for _, variant := range []string{"table", "jump", "ladder", "jumpladder", "optimal"} {
		got := runQueryWithInput(t, variant, input)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("variant=%s mismatch (-want +got):\n%s", variant, diff)
		}
	}
}

func TestQueryGoldenStarOutOfRange(t *testing.T) {
	input := "-1 0 0 0\n3 2\n3 0\n"
	want := "-1\n0\n"

	got := runQueryWithInput(t, "optimal", input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryTerminatesOnEOFWithoutTrailingLine(t *testing.T) {
	input := "-1 0\n1 0\n"
	want := "0\n"

	got := runQueryWithInput(t, "optimal", input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryUnknownVariant(t *testing.T) {
	cmd := &cobra.Command{RunE: runQuery}
	queryVariant = "nonsense"
	queryCapacity = 0
	queryTreeFile = ""

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("-1 0\n"))
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err == nil {
		t.Fatal("expected error for unknown variant, got nil")
	}
}
