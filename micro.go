// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import "github.com/gaissmai/levelancestor/internal/shapekey"

// microTree records one micro-tree's DFS-index -> global-node-id map
// and its shape key, used to look up the shared per-shape table.
type microTree struct {
	shape    shapekey.Key
	nodeList []int // microDfsIndex -> global node id
}

// microData holds every micro node's local coordinates plus
// the shape-keyed tables, shared across micro-trees with an identical
// Euler-tour encoding.
type microData struct {
	dfsIndex []int // per node, -1 if not micro
	treeID   []int // per node, -1 if not micro
	trees    []microTree
	tables   map[shapekey.Key][][]int // shape -> [dfsIndex][localDepth] -> dfsIndex
}

// buildMicroTrees walks every micro-root's subtree (restricted to
// tree.children, which for a micro node are themselves all micro,
// since subtree size is monotone non-increasing going down) emitting
// the balanced-parenthesis encoding and the DFS-index table.
func buildMicroTrees(tree *coreTree, part *partition) *microData {
	n := tree.n
	md := &microData{
		dfsIndex: make([]int, n),
		treeID:   make([]int, n),
		tables:   make(map[shapekey.Key][][]int),
	}
	for i := range md.treeID {
		md.treeID[i] = NoAncestor
		md.dfsIndex[i] = NoAncestor
	}

	for root := 0; root < n; root++ {
		if !part.isMicro.Test(uint(root)) || part.microRoot[root] != root {
			continue
		}

		nodeList, shape := encodeMicroTree(tree, root)
		treeID := len(md.trees)
		for i, g := range nodeList {
			md.dfsIndex[g] = i
			md.treeID[g] = treeID
		}
		md.trees = append(md.trees, microTree{shape: shape, nodeList: nodeList})

		if _, ok := md.tables[shape]; !ok {
			md.tables[shape] = buildMicroTable(tree, nodeList)
		}
	}

	return md
}

// encodeMicroTree performs an iterative DFS, assigning pre-order
// DFS indices and emitting a down(0)/up(1) Euler-tour bit string
// (no emission on returning to root).
func encodeMicroTree(tree *coreTree, root int) (nodeList []int, shape shapekey.Key) {
	nodeList = append(nodeList, root)

	type frame struct {
		v        int
		childIdx int
	}
	stack := []frame{{root, 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := tree.children[top.v]

		if top.childIdx < len(children) {
			c := children[top.childIdx]
			top.childIdx++

			shape = shape.Push(0)
			nodeList = append(nodeList, c)
			stack = append(stack, frame{c, 0})
			continue
		}

		stack = stack[:len(stack)-1]
		if top.v != root {
			shape = shape.Push(1)
		}
	}

	return nodeList, shape
}

// buildMicroTable reconstructs (localParent, localDepth) from the
// node list and fills table[i][d'] = the DFS index of the ancestor
// of i at local depth d'.
func buildMicroTable(tree *coreTree, nodeList []int) [][]int {
	size := len(nodeList)
	rootDepth := tree.depth[nodeList[0]]

	idxOf := make(map[int]int, size)
	for i, g := range nodeList {
		idxOf[g] = i
	}

	localDepth := make([]int, size)
	localParent := make([]int, size)
	for i, g := range nodeList {
		localDepth[i] = tree.depth[g] - rootDepth
		if i == 0 {
			localParent[i] = NoAncestor
			continue
		}
		localParent[i] = idxOf[tree.parent[g]]
	}

	table := make([][]int, size)
	for i := 0; i < size; i++ {
		row := make([]int, size)
		for d := range row {
			row[d] = NoAncestor
		}
		for cur := i; cur != NoAncestor; cur = localParent[cur] {
			row[localDepth[cur]] = cur
		}
		table[i] = row
	}

	return table
}
