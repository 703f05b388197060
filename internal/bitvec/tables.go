// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitvec implements the word-parallel bracket primitives and the
// rank/select bit-vector contract that the succinct trie encodings are
// built on.
//
// The bracket tables below answer, inside a single byte, "at which bit
// does the running close-minus-open excess first reach some small target
// delta". Composing byte lookups across a machine word gives findclose_w
// and finddepth_w without per-bit branching.
package bitvec

import "math/bits"

// deltaRange bounds the per-byte excess a lookup table needs to cover: one
// byte can shift the running excess by at most ±8, so any larger target
// delta is guaranteed unreachable within that byte and the table is never
// consulted for it.
const deltaRange = 8

const tableWidth = 2*deltaRange + 1

// notFound marks a byte/delta combination that never reaches the target.
const notFound int8 = 8

// closeDepth[b][d+deltaRange] is the earliest bit position (0..7, bit 0
// scanned first) within byte b at which the running count of close brackets
// minus open brackets first equals d, where bit value 1 means close and 0
// means open. It is notFound if the byte never reaches d.
var closeDepth [256][tableWidth]int8

func init() {
	for b := range closeDepth {
		for d := range closeDepth[b] {
			closeDepth[b][d] = notFound
		}

		excess := 0
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) != 0 {
				excess++
			} else {
				excess--
			}
			if excess < -deltaRange || excess > deltaRange {
				continue
			}
			idx := excess + deltaRange
			if closeDepth[b][idx] == notFound {
				closeDepth[b][idx] = int8(j)
			}
		}
	}
}

// netExcess is the close-minus-open excess contributed by a full byte.
func netExcess(b byte) int {
	ones := bits.OnesCount8(b)
	return ones - (8 - ones)
}

// findInWord scans the low limBits bits of w (bit 0 first, w already
// inverted so 1 = close) for the earliest position at which the running
// excess reaches target. limBits must be in [0, 64].
func findInWord(w uint64, limBits, target int) (pos int, ok bool) {
	excess := 0
	bitsLeft := limBits

	for byteIdx := 0; byteIdx < 8 && bitsLeft > 0; byteIdx++ {
		b := byte(w >> uint(byteIdx*8))

		avail := 8
		if bitsLeft < 8 {
			avail = bitsLeft
		}

		need := target - excess
		if need >= -deltaRange && need <= deltaRange {
			if p := closeDepth[b][need+deltaRange]; p != notFound && int(p) < avail {
				return byteIdx*8 + int(p), true
			}
		}

		if avail < 8 {
			break
		}

		bitsLeft -= 8
		excess += netExcess(b)
	}

	return 0, false
}

// FindCloseWord finds the position, within the low limBits bits of w, at
// which a bracket opened at relative position 0 is closed. w must already
// be presented with bit 1 meaning close (the caller inverts its own
// open=1 convention before calling). It is the findclose_w primitive of
// spec §4.1.
func FindCloseWord(w uint64, limBits int) (int, bool) {
	return findInWord(w, limBits, 1)
}

// FindDepthWord finds the earliest position within the low limBits bits of
// w (same 1=close convention) at which the running excess reaches d. d must
// be strictly positive. It is the finddepth_w primitive of spec §4.1.
func FindDepthWord(w uint64, limBits, d int) (int, bool) {
	return findInWord(w, limBits, d)
}
