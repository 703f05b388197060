// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import "sort"

// NaiveSet is the brute-force reference a trie's Contains is checked
// against in property tests: a sorted slice and a binary search, no
// succinct encoding involved.
type NaiveSet struct {
	keys []string
}

// NewNaiveSet builds a reference set from an already-sorted,
// duplicate-free key slice.
func NewNaiveSet(keys []string) *NaiveSet {
	return &NaiveSet{keys: keys}
}

// Contains reports whether key is in the reference set.
func (s *NaiveSet) Contains(key string) bool {
	i := sort.SearchStrings(s.keys, key)
	return i < len(s.keys) && s.keys[i] == key
}
