// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package levelancestor

import (
	"sync"
	"testing"
)

// TestConcurrentQueries demonstrates safe concurrent usage of a Built
// instance: multiple goroutines issuing Query concurrently against one
// shared, already-Built structure, the same pattern bart's
// ExampleTable_concurrent runs against a shared routing table. Run
// with -race to verify there is no data race on the read path.
func TestConcurrentQueries(t *testing.T) {
	parent := bushyParents(2000)
	depth := depthsOf(parent)

	variants, _ := allVariants(t, parent, false)
	for name, la := range variants {
		la := la
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(seed int) {
					defer wg.Done()
					for i := 0; i < len(parent); i++ {
						v := (i + seed) % len(parent)
						for d := 0; d <= depth[v]; d++ {
							want := naiveAncestor(parent, depth, v, d)
							if got := la.Query(v, d); got != want {
								t.Errorf("Query(%d, %d) = %d, want %d", v, d, got, want)
							}
						}
					}
				}(g)
			}
			wg.Wait()
		})
	}
}
