// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

// Optimal is the Bender-Farach-Colton macro-micro-tree construction:
// O(N) preprocessing, O(1) worst-case query. Build runs the
// components in the order the correctness of the whole depends on:
// tree metrics, macro/micro partition, ladders, jump nodes and their
// sparse jump table, jump-descendant propagation, micro-tree
// encoding.
type Optimal struct {
	tree   *coreTree
	part   *partition
	ladder *ladderData
	jt     *jumpTable
	jd     []int
	micro  *microData
}

// NewOptimal starts a Mutable Optimal over n nodes.
func NewOptimal(n int) *Optimal {
	return &Optimal{tree: newCoreTree(n)}
}

// NewOptimalFromParents builds an Optimal directly from a parent[]
// array; parent[0] must be -1.
func NewOptimalFromParents(parent []int) (*Optimal, error) {
	o := NewOptimal(len(parent))
	if err := o.tree.addEdgesFromParents(parent); err != nil {
		return nil, err
	}
	if err := o.Build(0); err != nil {
		return nil, err
	}
	return o, nil
}

// AddEdge records that child's parent is parent.
func (o *Optimal) AddEdge(parent, child int) error {
	return o.tree.AddEdge(parent, child)
}

// Build runs tree metrics, partitioning, ladders, the jump table,
// jump-descendant propagation, and micro-tree encoding, exactly in
// that order; later steps depend on earlier ones.
func (o *Optimal) Build(root int) error {
	if o.tree.state != mutable {
		return ErrAlreadyBuilt
	}
	if err := o.tree.computeMetrics(root); err != nil {
		o.tree.state = poisoned
		return err
	}

	o.part = buildPartition(o.tree, root)
	o.ladder = buildLadders(o.tree)
	o.jt = buildJumpTable(o.tree, o.ladder, o.part)
	o.jd = buildJumpDescendant(o.tree, root, o.part, o.jt)
	o.micro = buildMicroTrees(o.tree, o.part)

	o.tree.state = built
	return nil
}

// Query is the three-phase dispatcher: a micro-internal table
// lookup, or a micro-exit handoff to the macro parent, or one jump-
// pointer step plus one ladder read in the macro case.
func (o *Optimal) Query(v, d int) int {
	if o.tree.state != built || v < 0 || v >= o.tree.n {
		return NoAncestor
	}
	if d < 0 || d > o.tree.depth[v] {
		return NoAncestor
	}
	if d == o.tree.depth[v] {
		return v
	}

	if o.part.isMicro.Test(uint(v)) {
		r := o.part.microRoot[v]
		rd := o.tree.depth[r]

		if d >= rd {
			treeID := o.micro.treeID[v]
			mt := o.micro.trees[treeID]
			table := o.micro.tables[mt.shape]

			localIdx := table[o.micro.dfsIndex[v]][d-rd]
			if localIdx == NoAncestor {
				return NoAncestor
			}
			return mt.nodeList[localIdx]
		}

		v = o.tree.parent[r]
		if v == NoAncestor {
			return NoAncestor
		}
	}

	if o.tree.depth[v] == d {
		return v
	}

	j := o.jd[v]
	delta := o.tree.depth[j] - d
	b := ilog2(delta)

	row, _ := o.jt.jump.Get(uint(j))
	u := row[b]
	if o.tree.depth[u] == d {
		return u
	}
	return o.ladder.climbToDepth(o.tree, u, d)
}

// BuildComplexity reports this variant's preprocessing cost.
func (o *Optimal) BuildComplexity() Complexity { return Linear }

// QueryComplexity reports this variant's per-query cost.
func (o *Optimal) QueryComplexity() Complexity { return Constant }
