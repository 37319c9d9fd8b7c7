// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"log"

	"github.com/gaissmai/levelancestor/cmd/levelancestor/cmd"
)

func main() {
	log.SetFlags(log.Lmicroseconds)
	cmd.Execute()
}
