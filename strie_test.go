// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strie

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/succinctgo/strie/internal/golden"
)

// trie is the common contract all three encodings satisfy; shared
// tests run once per encoding through this interface.
type trie interface {
	Contains(key string) bool
	Size() int
	Empty() bool
}

type builder func(keys []string, opts ...Option) (trie, error)

func wrapLouds(keys []string, opts ...Option) (trie, error)    { return BuildLouds(keys, opts...) }
func wrapDfuds(keys []string, opts ...Option) (trie, error)    { return BuildDfuds(keys, opts...) }
func wrapCentroid(keys []string, opts ...Option) (trie, error) { return BuildCentroid(keys, opts...) }

var allBuilders = map[string]builder{
	"Louds":    wrapLouds,
	"Dfuds":    wrapDfuds,
	"Centroid": wrapCentroid,
}

func s1Keys() []string { return []string{"aa", "ab", "bc", "ca", "cb", "cc"} }

func TestScenarioS1(t *testing.T) {
	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			tr, err := build(s1Keys())
			require.NoError(t, err)
			require.Equal(t, 6, tr.Size())
			for _, k := range s1Keys() {
				require.True(t, tr.Contains(k), "expected member %q", k)
			}
			for _, k := range []string{"", "a", "b", "ac", "ba", "cd", "aaa"} {
				require.False(t, tr.Contains(k), "expected non-member %q", k)
			}
		})
	}
}

func TestScenarioS2PrefixChain(t *testing.T) {
	keys := []string{"", "a", "ab", "abc"}
	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			tr, err := build(keys)
			require.NoError(t, err)
			require.True(t, tr.Contains(""))
			require.True(t, tr.Contains("a"))
			require.True(t, tr.Contains("ab"))
			require.True(t, tr.Contains("abc"))
			require.False(t, tr.Contains("abcd"))
			require.False(t, tr.Contains("b"))
		})
	}
}

func TestScenarioS5UnsortedInput(t *testing.T) {
	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			_, err := build([]string{"b", "a"})
			require.ErrorIs(t, err, ErrNotSorted)
		})
	}
}

func TestBoundaryEmptyInput(t *testing.T) {
	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			tr, err := build(nil)
			require.NoError(t, err)
			require.True(t, tr.Empty())
			require.False(t, tr.Contains(""))
		})
	}
}

func TestBoundarySingletonEmptyString(t *testing.T) {
	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			tr, err := build([]string{""})
			require.NoError(t, err)
			require.False(t, tr.Empty())
			require.Equal(t, 1, tr.Size())
			require.True(t, tr.Contains(""))
			require.False(t, tr.Contains("a"))
		})
	}
}

func TestRandomKeysAgainstNaiveReference(t *testing.T) {
	prng := rand.New(rand.NewPCG(101, 202))

	for name, build := range allBuilders {
		t.Run(name, func(t *testing.T) {
			keys := golden.RandomKeys(prng, 300, 0, 6)
			holdout := golden.DisjointHoldout(prng, keys, 100, 0, 6)
			ref := golden.NewNaiveSet(keys)

			tr, err := build(keys)
			require.NoError(t, err)
			require.Equal(t, len(keys), tr.Size())

			for _, k := range keys {
				require.True(t, tr.Contains(k), "member %q", k)
			}
			for _, k := range holdout {
				require.Equal(t, ref.Contains(k), tr.Contains(k), "holdout %q", k)
			}
		})
	}
}

func TestRecursionCutoffOptionDoesNotChangeBehavior(t *testing.T) {
	prng := rand.New(rand.NewPCG(303, 404))
	keys := golden.RandomKeys(prng, 200, 1, 8)

	baseline, err := BuildDfuds(keys)
	require.NoError(t, err)

	shallow, err := BuildDfuds(keys, WithRecursionCutoff(16))
	require.NoError(t, err)

	for _, k := range keys {
		require.Equal(t, baseline.Contains(k), shallow.Contains(k))
	}
}
