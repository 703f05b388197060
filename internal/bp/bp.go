// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bp implements BpSupport, the hierarchical pioneer-family
// find-close/find-open operator balanced-parenthesis tries are built on
// (spec component B).
//
// The construction recurses: mark the "pioneer" brackets whose match
// leaves their own machine word, compact just those bits into a
// sub-sequence, and recurse on the sub-sequence. Recursion stops once a
// level is small enough to store an explicit match table outright. A
// query either resolves within a single word (the common case) or walks
// one level down through the pioneer compaction and back.
package bp

import (
	"github.com/succinctgo/strie/internal/bitvec"
)

// DefaultCutoff is the bit-length at or below which BpSupport stops
// recursing and stores an explicit find-close table instead of a further
// pioneer level.
const DefaultCutoff = 4096

const wordSize = bitvec.WordSize

// BpSupport answers find-close, find-open and depth queries against a
// frozen, globally balanced parenthesis BitVector in O(1) amortized time
// (O(log* n) worst case across recursion levels).
type BpSupport struct {
	bv      *bitvec.BitVector
	pioneer *bitvec.BitVector // nil at the base (cutoff) level
	sub     *BpSupport        // nil at the base level

	fc []int32 // explicit match table, base level only

	// reflected supports FindOpen by reduction to FindClose on the
	// reverse-complement sequence. Built only at the top level Build
	// returns; nil on every recursive sub-level, which never need it.
	reflected *BpSupport
}

// Build constructs a BpSupport over bv. bv must already hold a complete,
// globally balanced parenthesis sequence (bv.Get(0) open, matching the
// close at bv.Len()-1) and must not be mutated afterward.
func Build(bv *bitvec.BitVector, cutoff int) *BpSupport {
	s := build(bv, cutoff)
	s.reflected = build(reflect(bv), cutoff)
	return s
}

func build(bv *bitvec.BitVector, cutoff int) *BpSupport {
	n := bv.Len()
	if n <= cutoff {
		return &BpSupport{bv: bv, fc: bruteForceMatch(bv)}
	}

	pioneer := markPioneers(bv)
	pd := compactPioneers(bv, pioneer)
	return &BpSupport{bv: bv, pioneer: pioneer, sub: build(pd, cutoff)}
}

// reflect builds the reverse-complement of bv: rv[k] = 1 - bv[n-1-k].
// The reverse-complement of a balanced sequence is balanced, and
// find-open at i in bv reduces to find-close at n-1-i in rv.
func reflect(bv *bitvec.BitVector) *bitvec.BitVector {
	n := bv.Len()
	rv := bitvec.New(n)
	for k := 0; k < n; k++ {
		if !bv.Get(n - 1 - k) {
			rv.Set(k)
		}
	}
	rv.Freeze()
	return rv
}

// bruteForceMatch computes, for every position, the index of its
// matching bracket via an explicit stack. Kept as the level's table only
// below the recursion cutoff, where n is small enough that this table is
// the whole level; markPioneers also calls it at every recursive level
// as build-time scratch that is dropped once the pioneers are marked.
func bruteForceMatch(bv *bitvec.BitVector) []int32 {
	n := bv.Len()
	fc := make([]int32, n)
	stack := make([]int, 0, n/2+1)
	for i := 0; i < n; i++ {
		if bv.Get(i) {
			stack = append(stack, i)
		} else {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			fc[j] = int32(i)
			fc[i] = int32(j)
		}
	}
	return fc
}

// markPioneers marks the pioneer brackets of bv: the first and last
// bracket of every maximal run sharing a target word, found by one
// forward pass over opens (for find-close) and one backward pass over
// closes (for find-open), mirroring the two-pass construction in
// original_source's bp.hpp.
func markPioneers(bv *bitvec.BitVector) *bitvec.BitVector {
	n := bv.Len()
	match := bruteForceMatch(bv)
	isLong := func(i int) bool { return i/wordSize != int(match[i])/wordSize }

	r := bitvec.New(n)
	if n > 0 {
		r.Set(0)
		r.Set(n - 1)
	}

	// Forward pass: pioneer opens (and their matching closes), needed by
	// FindClose.
	{
		stack := []int{0}
		for i := 1; i+1 < n; i++ {
			if !isLong(i) {
				continue
			}
			if bv.Get(i) {
				top := stack[len(stack)-1]
				if int(match[i])/wordSize != int(match[top])/wordSize {
					r.Set(i)
					r.Set(int(match[i]))
				}
				stack = append(stack, i)
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}

	// Backward pass: pioneer closes (and their matching opens), needed by
	// FindOpen.
	{
		stack := []int{n - 1}
		for i := n - 2; i > 0; i-- {
			if !isLong(i) {
				continue
			}
			if !bv.Get(i) {
				top := stack[len(stack)-1]
				if int(match[i])/wordSize != int(match[top])/wordSize {
					r.Set(i)
					r.Set(int(match[i]))
				}
				stack = append(stack, i)
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}

	r.Freeze()
	return r
}

// compactPioneers extracts the bracket at every position marked in
// pioneer, in order, into a fresh balanced sequence.
func compactPioneers(bv, pioneer *bitvec.BitVector) *bitvec.BitVector {
	numPioneers := pioneer.Rank1(bv.Len())
	pd := bitvec.New(numPioneers)
	for k := 1; k <= numPioneers; k++ {
		j := pioneer.Select1(k)
		if bv.Get(j) {
			pd.Set(k - 1)
		}
	}
	pd.Freeze()
	return pd
}

// Depth returns the nesting depth at position i: the number of opens
// minus the number of closes strictly before i.
func (s *BpSupport) Depth(i int) int {
	return 2*s.bv.Rank1(i) - i
}

// FindClose returns the position of the bracket matching the open
// bracket at i. Panics if bv.Get(i) is a close bracket — a contract
// violation, never a legitimate query outcome.
func (s *BpSupport) FindClose(i int) int {
	if !s.bv.Get(i) {
		panic("bp: FindClose called on a close bracket")
	}
	if s.sub == nil {
		return int(s.fc[i])
	}

	// Bit 0 of the open bracket i itself is excluded: findclose_w looks
	// for the first point past i where closes outnumber opens by one, so
	// the window starts at i+1 (i is never the vector's last bit, since
	// the last bit of a balanced sequence is always a close).
	w, lim := s.bv.WordAt(i + 1)
	if pos, ok := bitvec.FindCloseWord(^w, lim); ok {
		return i + 1 + pos
	}
	return s.findCloseFar(i)
}

// findCloseFar resolves a find-close whose match leaves i's word, via
// the pioneer family: locate the nearest pioneer at or before i, recurse
// one level down to find its match, then resolve the remaining short
// hop with a single word-local finddepth scan (spec §4.2 step 5),
// mirroring original_source's bp.hpp tail step.
func (s *BpSupport) findCloseFar(i int) int {
	predSub := s.pioneer.Rank1(i+1) - 1
	pred := s.pioneer.Select1(predSub + 1)
	subClose := s.sub.FindClose(predSub)
	q := s.pioneer.Select1(subClose + 1)

	if i == pred {
		return q
	}

	// The answer lies in q's word, strictly before q. Scanning ascending
	// from that word's own start (not from q) means the target depth
	// must be phrased against the same origin: depth(blockStart) -
	// depth(i), which by depth(match(x)) = depth(x)+1 equals
	// depth(blockStart) - depth(match(i)) + 1, i.e. exactly where the
	// ascending scan reaches the match.
	blockStart := (q / wordSize) * wordSize
	d := s.Depth(blockStart) - s.Depth(i)
	w := s.bv.Word(q / wordSize)
	limBits := q - blockStart

	pos, ok := bitvec.FindDepthWord(^w, limBits, d)
	if !ok {
		panic("bp: inconsistent pioneer decomposition")
	}
	return blockStart + pos
}

// FindOpen returns the position of the bracket matching the close
// bracket at i. Panics if bv.Get(i) is an open bracket.
func (s *BpSupport) FindOpen(i int) int {
	if s.bv.Get(i) {
		panic("bp: FindOpen called on an open bracket")
	}
	n := s.bv.Len()
	closeInReflected := s.reflected.FindClose(n - 1 - i)
	return n - 1 - closeInReflected
}
