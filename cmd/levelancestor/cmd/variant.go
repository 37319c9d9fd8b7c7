// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/gaissmai/levelancestor"
)

// buildVariant constructs the requested LA implementation from a
// parent[] array, all via the New*FromParents constructors.
func buildVariant(variant string, parent []int, capacity int) (levelancestor.LA, error) {
	switch variant {
	case "table":
		return levelancestor.NewAncestorTableFromParents(parent, capacity)
	case "jump":
		return levelancestor.NewJumpPointerLAFromParents(parent)
	case "ladder":
		return levelancestor.NewLadderLAFromParents(parent)
	case "jumpladder":
		return levelancestor.NewJumpLadderLAFromParents(parent)
	case "optimal":
		return levelancestor.NewOptimalFromParents(parent)
	default:
		return nil, fmt.Errorf("unknown variant %q (want one of table, jump, ladder, jumpladder, optimal)", variant)
	}
}
