// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import "math/bits"

// buildState is the builder state machine: Mutable allows
// AddEdge, Build(success) moves to Built (queries allowed), Build
// failure moves to Poisoned (queries return NoAncestor, never a
// usable answer).
type buildState uint8

const (
	mutable buildState = iota
	built
	poisoned
)

// coreTree holds the arrays shared by every LA variant: the parent
// pointers, the insertion-ordered children lists and the metrics
// computed by computeMetrics. Graph relationships are expressed as
// parallel index arrays, never as an owning pointer graph — this
// sidesteps cyclic-ownership concerns and is cache-friendly.
type coreTree struct {
	n        int
	parent   []int
	children [][]int

	depth       []int
	height      []int
	subtreeSize []int

	state buildState
}

func newCoreTree(n int) *coreTree {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return &coreTree{
		n:        n,
		parent:   p,
		children: make([][]int, n),
	}
}

// AddEdge records that child's parent is parent. Only legal while the
// tree is Mutable.
func (t *coreTree) AddEdge(parent, child int) error {
	if t.state != mutable {
		return ErrAlreadyBuilt
	}
	if child < 0 || child >= t.n || parent < -1 || parent >= t.n {
		return ErrBadInput
	}
	t.parent[child] = parent
	if parent >= 0 {
		t.children[parent] = append(t.children[parent], child)
	}
	return nil
}

// addEdgesFromParents wires up a whole parent[] array at once, the
// convenience form of the New(parent[]) constructor. parent[0]
// must be -1: Build always runs with root=0 for this constructor.
func (t *coreTree) addEdgesFromParents(parent []int) error {
	if len(parent) > 0 && parent[0] != -1 {
		return ErrBadInput
	}
	for child, p := range parent {
		if p == -1 {
			continue
		}
		if err := t.AddEdge(p, child); err != nil {
			return err
		}
	}
	return nil
}

// computeMetrics runs an iterative post-order traversal from root,
// filling depth, height and subtreeSize. It fails with ErrInvalidTree
// if any node is unreachable from root.
func (t *coreTree) computeMetrics(root int) error {
	n := t.n
	t.depth = make([]int, n)
	t.height = make([]int, n)
	t.subtreeSize = make([]int, n)

	visited := make([]bool, n)
	visited[root] = true

	type frame struct {
		v         int
		processed bool
	}
	stack := []frame{{root, false}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.processed {
			size, height := 1, 0
			for _, c := range t.children[f.v] {
				size += t.subtreeSize[c]
				if t.height[c] > height {
					height = t.height[c]
				}
			}
			t.subtreeSize[f.v] = size
			t.height[f.v] = height + 1
			continue
		}

		stack = append(stack, frame{f.v, true})
		for _, c := range t.children[f.v] {
			visited[c] = true
			t.depth[c] = t.depth[f.v] + 1
			stack = append(stack, frame{c, false})
		}
	}

	for v := range visited {
		if !visited[v] {
			return ErrInvalidTree
		}
	}
	return nil
}

// postOrder returns all nodes reachable from root, children before
// parent, computed iteratively so that deep chains (N up to ~10^6)
// never overflow the native call stack.
func postOrder(t *coreTree, root int) []int {
	order := make([]int, 0, t.n)

	type frame struct {
		v         int
		processed bool
	}
	stack := []frame{{root, false}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.processed {
			order = append(order, f.v)
			continue
		}

		stack = append(stack, frame{f.v, true})
		for _, c := range t.children[f.v] {
			stack = append(stack, frame{c, false})
		}
	}
	return order
}

// ilog2 returns floor(log2(x)) for x >= 1, via a branch-free bit-scan
// rather than floating-point log2.
func ilog2(x int) int {
	return bits.Len(uint(x)) - 1
}

// log2Ceil1p returns ⌈log₂(x+1)⌉, the number of binary-lifting levels
// needed to cover a climb of up to x steps.
func log2Ceil1p(x int) int {
	return bits.Len(uint(x))
}
