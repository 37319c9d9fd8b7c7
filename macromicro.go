// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import "github.com/bits-and-blooms/bitset"

// partition is the macro/micro split of the tree. isMicro/isJump are
// kept as *bitset.BitSet membership sets rather than []bool, the same
// compact representation used elsewhere in this package for marker
// sets over the full node range.
type partition struct {
	mu        int
	isMicro   *bitset.BitSet
	microRoot []int
}

// computeMu is µ = max(1, ⌊log₂(N+1)/4⌋), the subtree-size threshold
// below which a node is classified micro.
func computeMu(n int) int {
	mu := ilog2(n+1) / 4
	if mu < 1 {
		mu = 1
	}
	return mu
}

// buildPartition marks micro nodes (subtree size <= mu) and assigns
// each micro node to the micro-root nearest above it, by a single BFS
// from root.
func buildPartition(tree *coreTree, root int) *partition {
	n := tree.n
	mu := computeMu(n)

	isMicro := bitset.New(uint(n))
	for v := 0; v < n; v++ {
		if tree.subtreeSize[v] <= mu {
			isMicro.Set(uint(v))
		}
	}

	microRoot := make([]int, n)
	for i := range microRoot {
		microRoot[i] = -1
	}
	if isMicro.Test(uint(root)) {
		microRoot[root] = root
	}

	queue := make([]int, 0, n)
	queue = append(queue, root)
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, c := range tree.children[v] {
			switch {
			case isMicro.Test(uint(v)):
				microRoot[c] = microRoot[v]
			case isMicro.Test(uint(c)):
				microRoot[c] = c
			default:
				microRoot[c] = -1
			}
			queue = append(queue, c)
		}
	}

	return &partition{mu: mu, isMicro: isMicro, microRoot: microRoot}
}
