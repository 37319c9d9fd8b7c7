// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package levelancestor implements Level Ancestor (LA) queries over a
// rooted tree of N nodes: given a node v and a target depth d, find
// the unique ancestor of v at depth d, or report that none exists.
//
// levelancestor offers five variants with different preprocessing
// and query cost:
//
//   - AncestorTable: O(N²) build, O(1) query — a direct reference
//   - JumpPointerLA: O(N log N) build, O(log N) query — binary lifting
//   - LadderLA:      O(N) build, O(log N) query — long-path ladders
//   - JumpLadderLA:  O(N log N) build, O(log N) query — jump pointers accelerated by ladders
//   - Optimal:       O(N) build, O(1) worst-case query — the
//     Bender-Farach-Colton macro-micro-tree decomposition
//
// All five satisfy the LA interface. Pick AncestorTable for small
// trees where simplicity wins, JumpPointerLA or LadderLA when O(N²)
// memory is unacceptable but O(1) query is not required, and Optimal
// when both O(N) preprocessing and O(1) query are needed.
//
// Once Build succeeds an instance is immutable and safe for concurrent
// read-only queries; construction itself is not safe for concurrent
// use.
package levelancestor
