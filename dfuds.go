// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import (
	"github.com/succinctgo/strie/internal/bitvec"
	"github.com/succinctgo/strie/internal/bp"
)

// nodeSeq is the shared depth-first unary-degree-sequence addressing
// core Dfuds and Centroid both build their node/child navigation on
// (spec §4.4's degree/child formulas). A node's block starts at some
// position x holding degree(x) consecutive '1' bits followed by one
// '0'; child(x, i) resolves the i-th child (in label order) via
// find-close over the reverse index.
type nodeSeq struct {
	bv *bitvec.BitVector
	bp *bp.BpSupport
}

// rankR is the count of '0' bits before i — the node-index space used
// to index leaf[]/labels[] (spec's rankR(i) = i - rank1(B,i)).
func (s *nodeSeq) rankR(i int) int { return s.bv.Rank0(i) }

// degree returns the number of children (or branch children, for
// Centroid) recorded in the block starting at x.
func (s *nodeSeq) degree(x int) int {
	r := s.rankR(x)
	return s.bv.Select0(r+1) - x
}

// child resolves the i-th child (0-based, label order) of the node
// whose block starts at x.
func (s *nodeSeq) child(x, i int) int {
	return s.bp.FindClose(x+s.degree(x)-1-i) + 1
}

// Dfuds is the depth-first succinct trie (component D): per node in
// preorder, degree(x) '1' bits followed by a '0', with a synthetic '1'
// prepended so the root's block starts at position 1. child() is O(1)
// via find-close over the reverse index, built on internal/bp.
type Dfuds struct {
	core  nodeSeq
	chars []byte // edge label per '1' position, preorder-flat
	leaf  *bitvec.BitVector
	size  int
}

// BuildDfuds builds a Dfuds trie from a strictly sorted, duplicate-free
// key sequence.
func BuildDfuds(keys []string, opts ...Option) (*Dfuds, error) {
	if err := checkSorted(keys); err != nil {
		return nil, err
	}
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := buildTree(keys)
	return assembleDfuds(root, len(keys), cfg.cutoff), nil
}

func assembleDfuds(root *buildNode, size, cutoff int) *Dfuds {
	var countNodes, totalBits int
	var count func(*buildNode)
	count = func(n *buildNode) {
		countNodes++
		totalBits += len(n.children) + 1
		for _, e := range n.children {
			count(e.node)
		}
	}
	count(root)

	bv := bitvec.New(1 + totalBits)
	chars := make([]byte, 1+totalBits)
	leaf := bitvec.New(countNodes)

	bv.Set(0) // synthetic prepended '1'
	pos := 1
	nodeIdx := 0

	var emit func(*buildNode)
	emit = func(n *buildNode) {
		for _, e := range n.children {
			bv.Set(pos)
			chars[pos] = e.char
			pos++
		}
		pos++ // '0' delimiter
		if n.terminal {
			leaf.Set(nodeIdx)
		}
		nodeIdx++

		for _, e := range n.children {
			emit(e.node)
		}
	}
	emit(root)

	bv.Freeze()
	leaf.Freeze()

	return &Dfuds{
		core:  nodeSeq{bv: bv, bp: bp.Build(bv, cutoff)},
		chars: chars,
		leaf:  leaf,
		size:  size,
	}
}

// Contains reports whether key is in the set (spec §4.4).
func (t *Dfuds) Contains(key string) bool {
	idx := 1
	for k := 0; k < len(key); k++ {
		c := key[k]
		i := 0
		for idx+i < t.core.bv.Len() && t.core.bv.Get(idx+i) && t.chars[idx+i] < c {
			i++
		}
		if idx+i >= t.core.bv.Len() || !t.core.bv.Get(idx+i) || t.chars[idx+i] != c {
			return false
		}
		idx = t.core.child(idx, i)
	}
	return t.leaf.Get(t.core.rankR(idx))
}

// Size returns the number of distinct keys in the set.
func (t *Dfuds) Size() int { return t.size }

// Empty reports whether the set has no keys.
func (t *Dfuds) Empty() bool { return t.size == 0 }
