// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import "math/rand/v2"

// naiveAncestor walks parent pointers depth[v]-d times, the textbook
// definition used as an oracle in property-based tests (invariant 5).
func naiveAncestor(parent, depth []int, v, d int) int {
	if v < 0 || v >= len(parent) || d < 0 || d > depth[v] {
		return NoAncestor
	}
	for depth[v] != d {
		v = parent[v]
	}
	return v
}

// randomParentArray builds a parent[] array of n nodes where node i>0
// attaches to a uniformly random existing node in [0, i), the same
// generator used by cmd/levelancestor's gen subcommand and by the
// random-tree tests in this package.
func randomParentArray(rng *rand.Rand, n int) []int {
	parent := make([]int, n)
	parent[0] = -1
	for i := 1; i < n; i++ {
		parent[i] = rng.IntN(i)
	}
	return parent
}

// allVariants builds every LA variant from the same parent[] array and
// returns them alongside depth, computed independently for the
// oracle. skipTable omits the O(N²) AncestorTable variant entirely —
// for the genuinely large-N scenarios (S6) where even a raised
// capacity cap would mean allocating billions of table entries,
// exactly the quadratic blow-up §4.2's cap exists to prevent.
func allVariants(t interface{ Fatalf(string, ...any) }, parent []int, skipTable bool) (map[string]LA, []int) {
	depth := make([]int, len(parent))
	for v := range parent {
		d := 0
		for u := v; parent[u] != -1; u = parent[u] {
			d++
		}
		depth[v] = d
	}

	out := map[string]LA{}

	if !skipTable {
		// AncestorTable's capacity cap defaults to DefaultCapacity=1000;
		// raise it to fit whenever a test's N exceeds that (but is still
		// modest), so every variant actually gets built and exercised
		// instead of failing on ErrCapacityExceeded before a single
		// Query runs.
		capacity := DefaultCapacity
		if len(parent) > capacity {
			capacity = len(parent)
		}
		at, err := NewAncestorTableFromParents(parent, capacity)
		if err != nil {
			t.Fatalf("AncestorTable: %v", err)
		}
		out["table"] = at
	}

	jp, err := NewJumpPointerLAFromParents(parent)
	if err != nil {
		t.Fatalf("JumpPointerLA: %v", err)
	}
	out["jump"] = jp

	la, err := NewLadderLAFromParents(parent)
	if err != nil {
		t.Fatalf("LadderLA: %v", err)
	}
	out["ladder"] = la

	jl, err := NewJumpLadderLAFromParents(parent)
	if err != nil {
		t.Fatalf("JumpLadderLA: %v", err)
	}
	out["jumpladder"] = jl

	opt, err := NewOptimalFromParents(parent)
	if err != nil {
		t.Fatalf("Optimal: %v", err)
	}
	out["optimal"] = opt

	return out, depth
}
