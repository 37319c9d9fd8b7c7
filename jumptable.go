// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gaissmai/levelancestor/internal/sparse"
)

// jumpTable marks jump nodes: a macro node is a jump node iff every
// child is micro (a macro leaf). Binary-lifting pointers are stored
// only for jump nodes, a sparse subset of all N nodes, in a
// popcount-compressed sparse.Array rather than a dense N-sized table.
type jumpTable struct {
	isJump *bitset.BitSet
	jump   sparse.Array[[]int]
	logN   int
}

// buildJumpTable marks jump nodes and fills their sparse binary-lifting
// pointers, climbing through ladders rather than parent-by-parent.
func buildJumpTable(tree *coreTree, ld *ladderData, part *partition) *jumpTable {
	n := tree.n
	isJump := bitset.New(uint(n))

	jumpNodes := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if part.isMicro.Test(uint(v)) {
			continue
		}
		allMicro := true
		for _, c := range tree.children[v] {
			if !part.isMicro.Test(uint(c)) {
				allMicro = false
				break
			}
		}
		if allMicro {
			isJump.Set(uint(v))
			jumpNodes = append(jumpNodes, v)
		}
	}

	logN := log2Ceil1p(n)
	if logN == 0 {
		logN = 1
	}

	jt := &jumpTable{isJump: isJump, logN: logN}

	for _, v := range jumpNodes {
		row := make([]int, logN)
		row[0] = tree.parent[v]
		jt.jump.InsertAt(uint(v), row)
	}

	for i := 1; i < logN; i++ {
		step := 1 << (i - 1)
		for _, v := range jumpNodes {
			row, _ := jt.jump.Get(uint(v))
			prev := row[i-1]
			if prev == -1 {
				row[i] = -1
				continue
			}
			row[i] = ld.climbLadders(tree, prev, step)
		}
	}

	return jt
}
