// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import "fmt"

// checkSorted enforces the one precondition every Build function shares:
// keys must be strictly increasing, so each distinct key appears once.
func checkSorted(keys []string) error {
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			return fmt.Errorf("%w: %q at index %d does not follow %q", ErrNotSorted, keys[i], i, keys[i-1])
		}
	}
	return nil
}

// buildEdge is one labeled edge out of a buildNode, in ascending char
// order by construction (sorted input keys visit children in that
// order).
type buildEdge struct {
	char byte
	node *buildNode
}

// buildNode is the ephemeral pointer-based trie all three encodings
// assemble from a sorted key list before compacting into their succinct
// layout. It is build-time scratch only — never kept once a trie's
// bit vectors and arrays are assembled (spec §9: "stacks during
// construction only").
type buildNode struct {
	children []buildEdge
	terminal bool
	size     int // number of terminal nodes in this subtree, including itself
}

// child returns the child edge labeled c, creating it if this is the
// first key to reach this node via c. Sorted input guarantees c is
// never less than the most recently created child's char, so a node
// never needs more than its last edge checked.
func (n *buildNode) child(c byte) *buildNode {
	if last := len(n.children) - 1; last >= 0 && n.children[last].char == c {
		return n.children[last].node
	}
	child := &buildNode{}
	n.children = append(n.children, buildEdge{char: c, node: child})
	return child
}

// buildTree assembles the ephemeral trie for a sorted, duplicate-free
// key sequence.
func buildTree(keys []string) *buildNode {
	root := &buildNode{}
	for _, k := range keys {
		n := root
		for i := 0; i < len(k); i++ {
			n = n.child(k[i])
		}
		n.terminal = true
	}
	computeSizes(root)
	return root
}

// computeSizes fills in n.size (and every descendant's) bottom-up.
func computeSizes(n *buildNode) int {
	size := 0
	if n.terminal {
		size = 1
	}
	for _, e := range n.children {
		size += computeSizes(e.node)
	}
	n.size = size
	return size
}
