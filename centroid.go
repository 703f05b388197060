// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import (
	"github.com/succinctgo/strie/internal/bitvec"
	"github.com/succinctgo/strie/internal/bp"
	"github.com/succinctgo/strie/internal/packed"
)

// kEndLabel is the synthetic branch character recorded when a centroid
// path passes through a key that is a proper prefix of another key: an
// "end of label here" marker competing for branch-position ordering
// like any other light child. Spec's Design Notes flag this as assuming
// keys never contain a NUL byte.
const kEndLabel byte = 0

// centroidBranch is one branch edge collected while walking a centroid
// path during construction: a light child's own subtree, or, for
// kEndLabel, a trivial placeholder node. The placeholder carries no
// label or acceptance state of its own and Contains never reads it —
// it exists only so the branch's '1' bit has a properly nested match,
// the same as any other child, keeping the encoding's bracket sequence
// balanced.
type centroidBranch struct {
	pos   int // index into the owning label where this branch forks off
	char  byte
	child *centroidNode
}

// centroidNode is the ephemeral compacted node built by following heavy
// children as far as possible before compacting into the final layout.
// Build-time scratch only, like buildNode.
type centroidNode struct {
	label    []byte
	terminal bool // true iff the path ended at an accepting true leaf
	branches []centroidBranch
}

// buildCentroidTree walks from n down its heavy-child chain, absorbing
// each heavy edge into the label and spinning off light children (and
// terminal-but-branching nodes) as separate branches, per spec §4.5's
// construction sketch.
func buildCentroidTree(n *buildNode) *centroidNode {
	cn := &centroidNode{}
	cur := n
	for {
		if cur.terminal && len(cur.children) > 0 {
			cn.branches = append(cn.branches, centroidBranch{pos: len(cn.label), char: kEndLabel, child: &centroidNode{}})
		}
		if len(cur.children) == 0 {
			cn.terminal = cur.terminal
			return cn
		}

		heavy := 0
		for i := 1; i < len(cur.children); i++ {
			if cur.children[i].node.size > cur.children[heavy].node.size {
				heavy = i
			}
		}

		for i, e := range cur.children {
			if i == heavy {
				continue
			}
			cn.branches = append(cn.branches, centroidBranch{
				pos:   len(cn.label),
				char:  e.char,
				child: buildCentroidTree(e.node),
			})
		}

		cn.label = append(cn.label, cur.children[heavy].char)
		cur = cur.children[heavy].node
	}
}

func countBranchGroups(branches []centroidBranch) int {
	if len(branches) == 0 {
		return 0
	}
	groups := 1
	for i := 1; i < len(branches); i++ {
		if branches[i].pos != branches[i-1].pos {
			groups++
		}
	}
	return groups
}

func maxBranchPos(cn *centroidNode) int {
	m := 0
	for _, b := range cn.branches {
		if b.pos > m {
			m = b.pos
		}
		if b.child != nil {
			if cm := maxBranchPos(b.child); cm > m {
				m = cm
			}
		}
	}
	return m
}

// Centroid is the centroid-path, path-compressed Dfuds trie (component
// E): each node owns a label string spanning a run of heavy-child
// edges, with light children (and proper-prefix acceptance points)
// recorded as branch groups keyed by their position along the label.
type Centroid struct {
	core   nodeSeq
	labels [][]byte
	leaf   *bitvec.BitVector
	cs     []byte            // branch character, parallel to core.bv '1' positions
	bs     *bitvec.BitVector // branch char greater than the label's own char at that position
	bl     *bitvec.BitVector // 1 at the last branch of its position-group
	is     *packed.Vector    // one entry per branch group: its position, ascending
	size   int
}

// BuildCentroid builds a Centroid trie from a strictly sorted,
// duplicate-free key sequence.
func BuildCentroid(keys []string, opts ...Option) (*Centroid, error) {
	if err := checkSorted(keys); err != nil {
		return nil, err
	}
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	root := buildTree(keys)
	croot := buildCentroidTree(root)
	return assembleCentroid(croot, len(keys), cfg.cutoff), nil
}

func assembleCentroid(root *centroidNode, size, cutoff int) *Centroid {
	var countNodes, totalBits, totalGroups int
	var count func(*centroidNode)
	count = func(cn *centroidNode) {
		countNodes++
		totalBits += len(cn.branches) + 1
		totalGroups += countBranchGroups(cn.branches)
		for _, b := range cn.branches {
			if b.child != nil {
				count(b.child)
			}
		}
	}
	count(root)

	bv := bitvec.New(1 + totalBits)
	cs := make([]byte, 1+totalBits)
	bs := bitvec.New(1 + totalBits)
	bl := bitvec.New(1 + totalBits)
	is := packed.New(totalGroups, maxBranchPos(root))
	labels := make([][]byte, countNodes)
	leaf := bitvec.New(countNodes)

	bv.Set(0)
	pos := 1
	nodeIdx := 0
	groupIdx := 0

	var emit func(*centroidNode)
	emit = func(cn *centroidNode) {
		id := nodeIdx
		labels[id] = cn.label
		if cn.terminal {
			leaf.Set(id)
		}
		nodeIdx++

		i := 0
		for i < len(cn.branches) {
			j := i
			groupPos := cn.branches[i].pos
			for j < len(cn.branches) && cn.branches[j].pos == groupPos {
				j++
			}

			is.Set(groupIdx, uint64(groupPos))
			groupIdx++

			for k := i; k < j; k++ {
				b := cn.branches[k]
				bv.Set(pos)
				cs[pos] = b.char
				if b.char != kEndLabel && groupPos < len(cn.label) && b.char > cn.label[groupPos] {
					bs.Set(pos)
				}
				if k == j-1 {
					bl.Set(pos)
				}
				pos++
			}
			i = j
		}
		pos++ // '0' delimiter

		for _, b := range cn.branches {
			if b.child != nil {
				emit(b.child)
			}
		}
	}
	emit(root)

	bv.Freeze()
	bs.Freeze()
	bl.Freeze()
	leaf.Freeze()

	return &Centroid{
		core:   nodeSeq{bv: bv, bp: bp.Build(bv, cutoff)},
		labels: labels,
		leaf:   leaf,
		cs:     cs,
		bs:     bs,
		bl:     bl,
		is:     is,
		size:   size,
	}
}

// branchGroup locates, within the node whose block starts at idx, the
// branch group at label position target. It returns the group's first
// child offset i and whether a group at exactly that position exists.
func (t *Centroid) branchGroup(idx, target int) (i int, ok bool) {
	r := t.bl.Rank1(idx)
	deg := t.core.degree(idx)
	bdeg := t.bl.Rank1(idx+deg) - r

	b := 0
	for b < bdeg && int(t.is.Get(r+b)) != target {
		b++
	}
	if b >= bdeg || int(t.is.Get(r+b)) != target {
		return 0, false
	}

	if b == 0 {
		return 0, true
	}
	return t.bl.Select1(r+b) + 1 - idx, true
}

// Contains reports whether key is in the set (spec §4.5).
func (t *Centroid) Contains(key string) bool {
	id, idx, d := 0, 1, 0
	m := len(key)

	for k := 0; k < m; k++ {
		c := key[k]
		label := t.labels[id]
		if k-d < len(label) && label[k-d] == c {
			continue
		}

		i, ok := t.branchGroup(idx, k-d)
		if !ok {
			return false
		}
		for t.cs[idx+i] != c {
			if t.bl.Get(idx + i) {
				return false
			}
			i++
		}

		d = k + 1
		idx = t.core.child(idx, i)
		id = t.core.rankR(idx)
	}

	if label := t.labels[id]; len(label) == m-d {
		return t.leaf.Get(id)
	}

	i, ok := t.branchGroup(idx, m-d)
	if !ok {
		return false
	}
	for t.cs[idx+i] != kEndLabel {
		if t.bl.Get(idx + i) {
			return false
		}
		i++
	}
	return true
}

// Size returns the number of distinct keys in the set.
func (t *Centroid) Size() int { return t.size }

// Empty reports whether the set has no keys.
func (t *Centroid) Empty() bool { return t.size == 0 }
