// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package packed

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	prng := rand.New(rand.NewPCG(5, 6))

	for _, width := range []int{1, 3, 7, 17, 31} {
		n := 500
		v := NewWidth(n, width)
		want := make([]uint64, n)
		maxVal := uint64(1)<<uint(width) - 1

		for i := 0; i < n; i++ {
			val := prng.Uint64() & maxVal
			want[i] = val
			v.Set(i, val)
		}

		for i := 0; i < n; i++ {
			require.Equal(t, want[i], v.Get(i), "width=%d i=%d", width, i)
		}
	}
}

func TestNewSizesWidthFromMaxValue(t *testing.T) {
	v := New(10, 0)
	require.Equal(t, 1, v.Width())

	v = New(10, 255)
	require.Equal(t, 8, v.Width())

	v = New(10, 256)
	require.Equal(t, 9, v.Width())
}
