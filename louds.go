// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import "github.com/succinctgo/strie/internal/bitvec"

// loudsDelim is the sentinel stored in chars at every '0'-delimiter
// position. Edge labels are real key bytes, which are never zero unless
// a key contains a NUL byte (spec.md's Design Notes note this as an
// accepted limitation shared with the centroid-path encoding's own
// end-label sentinel).
const loudsDelim byte = 0

// Louds is the level-order succinct trie (component C): per node in BFS
// order, a '0' delimiter followed by one '1' per child, with a
// synthetic '1' prepended for the root. It needs only rank/select, not
// find-close.
type Louds struct {
	bv    *bitvec.BitVector // delimiter/child bits, BFS order
	chars []byte            // edge label per '1' position, loudsDelim at '0' positions
	leaf  *bitvec.BitVector // leaf[r] = node r (by delimiter rank) is an accepting key
	size  int
}

// BuildLouds builds a Louds trie from a strictly sorted, duplicate-free
// key sequence.
func BuildLouds(keys []string, opts ...Option) (*Louds, error) {
	if err := checkSorted(keys); err != nil {
		return nil, err
	}
	root := buildTree(keys)
	return assembleLouds(root, len(keys)), nil
}

func assembleLouds(root *buildNode, size int) *Louds {
	var countNodes, totalBits int
	queue := []*buildNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		countNodes++
		totalBits += 1 + len(n.children) // delimiter + child bits
		for _, e := range n.children {
			queue = append(queue, e.node)
		}
	}

	bv := bitvec.New(1 + totalBits)
	chars := make([]byte, 1+totalBits)
	leaf := bitvec.New(countNodes)

	bv.Set(0) // synthetic super-root
	pos := 1
	nodeIdx := 0

	queue = []*buildNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		chars[pos] = loudsDelim // delimiter bit stays 0
		pos++
		if n.terminal {
			leaf.Set(nodeIdx)
		}
		nodeIdx++

		for _, e := range n.children {
			bv.Set(pos)
			chars[pos] = e.char
			pos++
			queue = append(queue, e.node)
		}
	}

	bv.Freeze()
	leaf.Freeze()

	return &Louds{bv: bv, chars: chars, leaf: leaf, size: size}
}

// Contains reports whether key is in the set (spec §4.3).
func (t *Louds) Contains(key string) bool {
	idx := 1 // child start of root
	for i := 0; i < len(key); i++ {
		c := key[i]
		idx++ // skip the '0' delimiter marking this node
		for idx < len(t.chars) && t.chars[idx] != loudsDelim && t.chars[idx] < c {
			idx++
		}
		if idx >= len(t.chars) || t.chars[idx] != c {
			return false
		}
		idx = t.bv.Select0(t.bv.Rank1(idx) + 1) // descend to first-child position
	}
	return t.leaf.Get(t.bv.Rank0(idx))
}

// Size returns the number of distinct keys in the set.
func (t *Louds) Size() int { return t.size }

// Empty reports whether the set has no keys.
func (t *Louds) Empty() bool { return t.size == 0 }
