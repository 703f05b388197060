// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden generates reproducible random inputs for the trie
// property tests: sorted key sets and balanced-parenthesis strings.
// Every generator takes an explicit *rand.Rand rather than the global
// source, so a failing property test can be pinned to a seed.
package golden

import (
	"math/rand/v2"
	"sort"
)

// alphabet is deliberately small so random keys collide into shared
// prefixes often, exercising branching and centroid-path compaction
// rather than producing a forest of single-char-deep leaves.
const alphabet = "abcde"

// RandomKeys returns n distinct random strings of length in
// [minLen, maxLen], sorted ascending and ready for a Build call.
func RandomKeys(prng *rand.Rand, n, minLen, maxLen int) []string {
	set := make(map[string]struct{}, n)
	keys := make([]string, 0, n)

	for len(keys) < n {
		l := minLen
		if maxLen > minLen {
			l += prng.IntN(maxLen - minLen + 1)
		}
		buf := make([]byte, l)
		for i := range buf {
			buf[i] = alphabet[prng.IntN(len(alphabet))]
		}
		k := string(buf)
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = struct{}{}
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// DisjointHoldout returns m random strings guaranteed not to appear in
// keys, for exercising the "contains(k) = false" side of membership
// tests.
func DisjointHoldout(prng *rand.Rand, keys []string, m, minLen, maxLen int) []string {
	present := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		present[k] = struct{}{}
	}

	out := make([]string, 0, m)
	for len(out) < m {
		l := minLen
		if maxLen > minLen {
			l += prng.IntN(maxLen - minLen + 1)
		}
		buf := make([]byte, l)
		for i := range buf {
			buf[i] = alphabet[prng.IntN(len(alphabet))]
		}
		k := string(buf)
		if _, ok := present[k]; ok {
			continue
		}
		present[k] = struct{}{} // avoid duplicate holdout entries too
		out = append(out, k)
	}
	return out
}

// RandomBalancedParens returns a random balanced-parenthesis bit string
// of length n (n must be even) as a []bool, bit value true meaning '('.
// Position 0 opens the pair that position n-1 closes, so the whole
// string is one enclosed sequence, the shape bp.Build accepts. Inside
// that pair, each position opens or closes with equal probability,
// except that it must open when no open is pending and must close when
// the remaining positions are all needed to close pending opens.
func RandomBalancedParens(prng *rand.Rand, n int) []bool {
	if n%2 != 0 {
		panic("golden: RandomBalancedParens requires an even length")
	}
	bits := make([]bool, n)
	if n == 0 {
		return bits
	}
	bits[0] = true
	open := 0
	for i := 1; i < n-1; i++ {
		remaining := n - 1 - i
		mustClose := open == remaining
		mustOpen := open == 0
		switch {
		case mustClose:
			bits[i] = false
			open--
		case mustOpen:
			bits[i] = true
			open++
		case prng.IntN(2) == 0:
			bits[i] = true
			open++
		default:
			bits[i] = false
			open--
		}
	}
	return bits
}

// MaxNestedParens returns the fully nested "(((...)))" string of length
// n (n must be even) — the boundary case spec.md §8 calls out for
// exercising multiple BpSupport recursion levels.
func MaxNestedParens(n int) []bool {
	if n%2 != 0 {
		panic("golden: MaxNestedParens requires an even length")
	}
	bits := make([]bool, n)
	for i := 0; i < n/2; i++ {
		bits[i] = true
	}
	return bits
}
