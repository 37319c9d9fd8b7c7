// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

// JumpPointerLA is the binary-lifting reference variant:
// jump[v][i] is the 2^i-th ancestor of v, climbed parent-by-parent
// when doubling. O(N log N) build, O(log N) query.
type JumpPointerLA struct {
	tree *coreTree
	jump [][]int
	logN int
}

// NewJumpPointerLA starts a Mutable JumpPointerLA over n nodes.
func NewJumpPointerLA(n int) *JumpPointerLA {
	return &JumpPointerLA{tree: newCoreTree(n)}
}

// NewJumpPointerLAFromParents builds a JumpPointerLA directly from a
// parent[] array; parent[0] must be -1.
func NewJumpPointerLAFromParents(parent []int) (*JumpPointerLA, error) {
	j := NewJumpPointerLA(len(parent))
	if err := j.tree.addEdgesFromParents(parent); err != nil {
		return nil, err
	}
	if err := j.Build(0); err != nil {
		return nil, err
	}
	return j, nil
}

// AddEdge records that child's parent is parent.
func (j *JumpPointerLA) AddEdge(parent, child int) error {
	return j.tree.AddEdge(parent, child)
}

// Build fills the sparse jump-pointer table.
func (j *JumpPointerLA) Build(root int) error {
	if j.tree.state != mutable {
		return ErrAlreadyBuilt
	}
	if err := j.tree.computeMetrics(root); err != nil {
		j.tree.state = poisoned
		return err
	}

	n := j.tree.n
	j.logN = log2Ceil1p(n)
	if j.logN == 0 {
		j.logN = 1
	}

	j.jump = make([][]int, n)
	for v := 0; v < n; v++ {
		row := make([]int, j.logN)
		row[0] = j.tree.parent[v]
		j.jump[v] = row
	}
	for i := 1; i < j.logN; i++ {
		for v := 0; v < n; v++ {
			mid := j.jump[v][i-1]
			if mid == -1 {
				j.jump[v][i] = -1
			} else {
				j.jump[v][i] = j.jump[mid][i-1]
			}
		}
	}

	j.tree.state = built
	return nil
}

// Query returns the ancestor of v at depth d, or NoAncestor.
func (j *JumpPointerLA) Query(v, d int) int {
	if j.tree.state != built || v < 0 || v >= j.tree.n {
		return NoAncestor
	}
	if d < 0 || d > j.tree.depth[v] {
		return NoAncestor
	}

	steps := j.tree.depth[v] - d
	for i := 0; steps > 0; i++ {
		if steps&1 == 1 {
			v = j.jump[v][i]
			if v == -1 {
				return NoAncestor
			}
		}
		steps >>= 1
	}
	return v
}

// BuildComplexity reports this variant's preprocessing cost.
func (j *JumpPointerLA) BuildComplexity() Complexity { return Linearithmic }

// QueryComplexity reports this variant's per-query cost.
func (j *JumpPointerLA) QueryComplexity() Complexity { return Logarithmic }
