package bitvec

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteFindClose mirrors FindCloseWord's contract via a direct scan,
// over the same "bit 1 = close" convention.
func bruteFindClose(w uint64, limBits int) (int, bool) {
	excess := 0
	for i := 0; i < limBits; i++ {
		if w&(1<<uint(i)) != 0 {
			excess++
		} else {
			excess--
		}
		if excess == 1 {
			return i, true
		}
	}
	return 0, false
}

func TestFindCloseWordAgainstBruteForce(t *testing.T) {
	prng := rand.New(rand.NewPCG(7, 9))
	for trial := 0; trial < 2000; trial++ {
		w := prng.Uint64()
		lim := prng.IntN(65)
		gotPos, gotOK := FindCloseWord(w, lim)
		wantPos, wantOK := bruteFindClose(w, lim)
		require.Equal(t, wantOK, gotOK, "w=%#x lim=%d", w, lim)
		if wantOK {
			require.Equal(t, wantPos, gotPos, "w=%#x lim=%d", w, lim)
		}
	}
}

func TestFindDepthWordMatchesFindCloseAtD1(t *testing.T) {
	prng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 500; trial++ {
		w := prng.Uint64()
		lim := prng.IntN(65)
		closePos, closeOK := FindCloseWord(w, lim)
		depthPos, depthOK := FindDepthWord(w, lim, 1)
		require.Equal(t, closeOK, depthOK)
		require.Equal(t, closePos, depthPos)
	}
}
