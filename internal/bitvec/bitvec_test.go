// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitvec

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankSelectAgainstBruteForce(t *testing.T) {
	prng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 63, 64, 65, 200, 1000} {
		bv := New(n)
		bits := make([]bool, n)
		for i := 0; i < n; i++ {
			if prng.IntN(2) == 0 {
				bv.Set(i)
				bits[i] = true
			}
		}
		bv.Freeze()

		var ones, zeros int
		for i := 0; i <= n; i++ {
			wantRank1, wantRank0 := 0, 0
			for j := 0; j < i; j++ {
				if bits[j] {
					wantRank1++
				} else {
					wantRank0++
				}
			}
			require.Equal(t, wantRank1, bv.Rank1(i), "Rank1(%d) n=%d", i, n)
			require.Equal(t, wantRank0, bv.Rank0(i), "Rank0(%d) n=%d", i, n)
		}

		for i := 0; i < n; i++ {
			if bits[i] {
				ones++
				require.Equal(t, i, bv.Select1(ones), "Select1(%d) n=%d", ones, n)
			} else {
				zeros++
				require.Equal(t, i, bv.Select0(zeros), "Select0(%d) n=%d", zeros, n)
			}
		}
	}
}

func TestWordAt(t *testing.T) {
	bv := New(10)
	bv.Set(0)
	bv.Set(3)
	bv.Set(9)
	bv.Freeze()

	w, lim := bv.WordAt(3)
	require.Equal(t, 7, lim) // 10 - 3
	require.True(t, w&1 != 0)
}
