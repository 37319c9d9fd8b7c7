// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

// buildJumpDescendant gives every macro node one jump-node descendant
// jd[v], reachable within its own macro subtree. Jump nodes map to
// themselves; micro nodes carry NoAncestor since they never need one.
// A macro subtree's leaves are jump nodes by definition, so every
// macro node is guaranteed a jd after propagation.
func buildJumpDescendant(tree *coreTree, root int, part *partition, jt *jumpTable) []int {
	n := tree.n
	jd := make([]int, n)

	for v := 0; v < n; v++ {
		switch {
		case part.isMicro.Test(uint(v)):
			jd[v] = NoAncestor
		case jt.isJump.Test(uint(v)):
			jd[v] = v
		default:
			jd[v] = NoAncestor
		}
	}

	for _, v := range postOrder(tree, root) {
		if part.isMicro.Test(uint(v)) || jd[v] != NoAncestor {
			continue
		}
		for _, c := range tree.children[v] {
			if jd[c] != NoAncestor {
				jd[v] = jd[c]
				break
			}
		}
	}

	return jd
}
