// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

// JumpLadderLA combines binary lifting with ladder climbing: every
// node gets a jump table, but doubling climbs through ladders instead
// of parent-by-parent. A query does one power-of-two jump followed by
// a ladder climb; without Optimal's macro/micro restriction on which
// nodes carry jump pointers, that final climb is not guaranteed to
// land in a single ladder, so the query cost is bounded O(log N)
// rather than Optimal's worst-case O(1).
type JumpLadderLA struct {
	tree   *coreTree
	ladder *ladderData
	jump   [][]int
	logN   int
}

// NewJumpLadderLA starts a Mutable JumpLadderLA over n nodes.
func NewJumpLadderLA(n int) *JumpLadderLA {
	return &JumpLadderLA{tree: newCoreTree(n)}
}

// NewJumpLadderLAFromParents builds a JumpLadderLA directly from a
// parent[] array; parent[0] must be -1.
func NewJumpLadderLAFromParents(parent []int) (*JumpLadderLA, error) {
	jl := NewJumpLadderLA(len(parent))
	if err := jl.tree.addEdgesFromParents(parent); err != nil {
		return nil, err
	}
	if err := jl.Build(0); err != nil {
		return nil, err
	}
	return jl, nil
}

// AddEdge records that child's parent is parent.
func (jl *JumpLadderLA) AddEdge(parent, child int) error {
	return jl.tree.AddEdge(parent, child)
}

// Build computes the ladder decomposition and the ladder-accelerated
// jump table.
func (jl *JumpLadderLA) Build(root int) error {
	if jl.tree.state != mutable {
		return ErrAlreadyBuilt
	}
	if err := jl.tree.computeMetrics(root); err != nil {
		jl.tree.state = poisoned
		return err
	}

	jl.ladder = buildLadders(jl.tree)

	n := jl.tree.n
	jl.logN = log2Ceil1p(n)
	if jl.logN == 0 {
		jl.logN = 1
	}

	jl.jump = make([][]int, n)
	for v := 0; v < n; v++ {
		row := make([]int, jl.logN)
		row[0] = jl.tree.parent[v]
		jl.jump[v] = row
	}
	for i := 1; i < jl.logN; i++ {
		step := 1 << (i - 1)
		for v := 0; v < n; v++ {
			prev := jl.jump[v][i-1]
			if prev == -1 {
				jl.jump[v][i] = -1
				continue
			}
			jl.jump[v][i] = jl.ladder.climbLadders(jl.tree, prev, step)
		}
	}

	jl.tree.state = built
	return nil
}

// Query returns the ancestor of v at depth d, or NoAncestor.
func (jl *JumpLadderLA) Query(v, d int) int {
	if jl.tree.state != built || v < 0 || v >= jl.tree.n {
		return NoAncestor
	}
	if d < 0 || d > jl.tree.depth[v] {
		return NoAncestor
	}
	if d == jl.tree.depth[v] {
		return v
	}

	delta := jl.tree.depth[v] - d
	b := ilog2(delta)
	u := jl.jump[v][b]
	if u == -1 {
		return NoAncestor
	}
	if jl.tree.depth[u] == d {
		return u
	}
	return jl.ladder.climbToDepth(jl.tree, u, d)
}

// BuildComplexity reports this variant's preprocessing cost.
func (jl *JumpLadderLA) BuildComplexity() Complexity { return Linearithmic }

// QueryComplexity reports this variant's per-query cost. Unlike
// Optimal, this combiner has no macro/micro restriction to guarantee
// a single ladder hop after the jump, so it is bounded at O(log N)
// rather than claimed as worst-case constant.
func (jl *JumpLadderLA) QueryComplexity() Complexity { return Logarithmic }
