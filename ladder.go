// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import "slices"

// ladderData is the long-path / ladder decomposition, shared by
// LadderLA, JumpLadderLA and Optimal.
type ladderData struct {
	lpc       []int   // long-path child, -1 for leaves
	ladders   [][]int // each ladder: extension (top-down) ++ long path
	ladderID  []int   // per node, which ladder it "owns"
	ladderPos []int   // per node, index within its own ladder
}

// buildLadders computes the tallest-child long-path decomposition and
// extends each path into a ladder. tree.height must already be
// populated by computeMetrics.
func buildLadders(tree *coreTree) *ladderData {
	n := tree.n
	ld := &ladderData{
		lpc:       make([]int, n),
		ladderID:  make([]int, n),
		ladderPos: make([]int, n),
	}

	for v := 0; v < n; v++ {
		best := -1
		bestHeight := -1
		for _, c := range tree.children[v] {
			if tree.height[c] > bestHeight {
				bestHeight = tree.height[c]
				best = c
			}
		}
		ld.lpc[v] = best
	}

	for v := 0; v < n; v++ {
		isHead := tree.parent[v] == -1 || ld.lpc[tree.parent[v]] != v
		if !isHead {
			continue
		}

		var path []int
		for u := v; u != -1; u = ld.lpc[u] {
			path = append(path, u)
		}

		// extend upward by the path's own length
		h := len(path)
		var ext []int
		for u := tree.parent[v]; u != -1 && len(ext) < h; u = tree.parent[u] {
			ext = append(ext, u)
		}
		slices.Reverse(ext)

		id := len(ld.ladders)
		full := append(ext, path...)
		ld.ladders = append(ld.ladders, full)

		for i, u := range path {
			ld.ladderID[u] = id
			ld.ladderPos[u] = len(ext) + i
		}
	}

	return ld
}

// climbToDepth answers LA(v, targetDepth) by repeated ladder
// indexing: if v's ladder reaches up to targetDepth, the answer is a
// single index read; otherwise move to the parent of the ladder's top
// and retry. Every ladder transition climbs at least the transited
// ladder's own long-path length, so this loop runs O(log N) times in
// the worst case and O(1) amortized when seeded by a jump pointer.
func (ld *ladderData) climbToDepth(tree *coreTree, v, targetDepth int) int {
	if targetDepth < 0 {
		return NoAncestor
	}
	for {
		ladder := ld.ladders[ld.ladderID[v]]
		top := ladder[0]
		if tree.depth[top] <= targetDepth {
			return ladder[ld.ladderPos[v]-(tree.depth[v]-targetDepth)]
		}
		v = tree.parent[top]
		if v == -1 {
			return NoAncestor
		}
	}
}

// climbLadders climbs k levels above u via ladders.
func (ld *ladderData) climbLadders(tree *coreTree, u, k int) int {
	return ld.climbToDepth(tree, u, tree.depth[u]-k)
}

// LadderLA is the ladder-only reference variant: O(N) build via
// the decomposition above, O(log N) query via climbToDepth with no
// jump-pointer acceleration.
type LadderLA struct {
	tree   *coreTree
	ladder *ladderData
}

// NewLadderLA starts a Mutable LadderLA over n nodes; wire it up with
// AddEdge then Build.
func NewLadderLA(n int) *LadderLA {
	return &LadderLA{tree: newCoreTree(n)}
}

// NewLadderLAFromParents builds a LadderLA directly from a parent[]
// array; parent[0] must be -1.
func NewLadderLAFromParents(parent []int) (*LadderLA, error) {
	l := NewLadderLA(len(parent))
	if err := l.tree.addEdgesFromParents(parent); err != nil {
		return nil, err
	}
	if err := l.Build(0); err != nil {
		return nil, err
	}
	return l, nil
}

// AddEdge records that child's parent is parent.
func (l *LadderLA) AddEdge(parent, child int) error {
	return l.tree.AddEdge(parent, child)
}

// Build computes tree metrics and the ladder decomposition.
func (l *LadderLA) Build(root int) error {
	if l.tree.state != mutable {
		return ErrAlreadyBuilt
	}
	if err := l.tree.computeMetrics(root); err != nil {
		l.tree.state = poisoned
		return err
	}
	l.ladder = buildLadders(l.tree)
	l.tree.state = built
	return nil
}

// Query returns the ancestor of v at depth d, or NoAncestor.
func (l *LadderLA) Query(v, d int) int {
	if l.tree.state != built || v < 0 || v >= l.tree.n {
		return NoAncestor
	}
	if d < 0 || d > l.tree.depth[v] {
		return NoAncestor
	}
	return l.ladder.climbToDepth(l.tree, v, d)
}

// BuildComplexity reports this variant's preprocessing cost.
func (l *LadderLA) BuildComplexity() Complexity { return Linear }

// QueryComplexity reports this variant's per-query cost.
func (l *LadderLA) QueryComplexity() Complexity { return Logarithmic }
