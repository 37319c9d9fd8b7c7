// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// treeFile is the declarative alternative to the stdin parent-array
// line: {nodes: [{id, parent}, ...]}, ids need not arrive in order.
type treeFile struct {
	Nodes []struct {
		ID     int `yaml:"id"`
		Parent int `yaml:"parent"`
	} `yaml:"nodes"`
}

// loadTreeFile reads a YAML tree description and returns the
// equivalent parent[] array, parent[0] == -1 required of node id 0.
func loadTreeFile(path string) ([]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}

	var tf treeFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing tree file: %w", err)
	}

	n := len(tf.Nodes)
	parent := make([]int, n)
	seen := make([]bool, n)
	for _, node := range tf.Nodes {
		if node.ID < 0 || node.ID >= n {
			return nil, fmt.Errorf("tree file: node id %d out of range [0, %d)", node.ID, n)
		}
		parent[node.ID] = node.Parent
		seen[node.ID] = true
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("tree file: node id %d never declared", id)
		}
	}

	return parent, nil
}
