// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array
// with popcount compression.
//
// Used by the level-ancestor builder to store binary-lifting jump
// pointers only for jump nodes, a sparse subset of all nodes.
package sparse

import "github.com/bits-and-blooms/bitset"

// Array, a generic implementation of a sparse array
// with popcount compression and payload T.
//
// indexes is the same *bitset.BitSet the teacher's node types carry
// (node.go's indexes/addrs fields), lazily allocated on the first
// InsertAt rather than eagerly via bitset.New(0) in a constructor, so
// that Array's zero value is ready to use without one.
type Array[T any] struct {
	indexes *bitset.BitSet
	Items   []T
}

// rank is the key of the popcount compression algorithm, mapping
// between bitset index and slice index.
func (s *Array[T]) rank(i uint) int {
	return int(s.indexes.Rank(i)) - 1
}

// Get the value at i from sparse array.
func (s *Array[T]) Get(i uint) (value T, ok bool) {
	if s.indexes != nil && s.indexes.Test(i) {
		return s.Items[s.rank(i)], true
	}
	return
}

// MustGet, use it only after a successful Test/Get
// or the behavior is undefined, maybe it panics.
func (s *Array[T]) MustGet(i uint) T {
	return s.Items[s.rank(i)]
}

// Test reports whether i has an entry in the sparse array.
func (s *Array[T]) Test(i uint) bool {
	return s.indexes != nil && s.indexes.Test(i)
}

// Len returns the number of items in sparse array.
func (s *Array[T]) Len() int {
	return len(s.Items)
}

// InsertAt a value at i into the sparse array.
// If the value already exists, overwrite it with val and return true.
func (s *Array[T]) InsertAt(i uint, value T) (exists bool) {
	if s.indexes == nil {
		s.indexes = bitset.New(0)
	}
	if s.indexes.Test(i) {
		s.Items[s.rank(i)] = value
		return true
	}

	s.indexes.Set(i)
	s.insertItem(s.rank(i), value)

	return false
}

// insertItem inserts the item at index i, shift the rest one pos right
//
// It panics if i is out of range.
func (s *Array[T]) insertItem(i int, item T) {
	var zero T
	s.Items = append(s.Items, zero)
	copy(s.Items[i+1:], s.Items[i:])
	s.Items[i] = item
}
