package kdgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kdgo/testutil"
)

func TestSelectNth(t *testing.T) {
	rng := testutil.NewRNG(31)

	for _, n := range []int{1, 2, 3, 10, 101, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			points := Slice(rng.UniformVectors(n, 2))

			perm := make([]uint32, n)
			for i := range perm {
				perm[i] = uint32(i)
			}

			nth := n / 2
			selectNth(points, perm, 0, n, nth, 0)

			pivot := points.Coord(perm[nth], 0)
			for i := 0; i < nth; i++ {
				require.LessOrEqual(t, points.Coord(perm[i], 0), pivot)
			}
			for i := nth + 1; i < n; i++ {
				require.GreaterOrEqual(t, points.Coord(perm[i], 0), pivot)
			}

			// Still a permutation of the identifiers.
			seen := make(map[uint32]bool, n)
			for _, id := range perm {
				require.False(t, seen[id])
				seen[id] = true
			}
		})
	}
}

func TestSelectNthSubRange(t *testing.T) {
	points := Slice{{9}, {1}, {5}, {3}, {7}, {2}, {8}}

	perm := []uint32{0, 1, 2, 3, 4, 5, 6}
	selectNth(points, perm, 2, 7, 4, 0)

	// Positions outside [2, 7) are untouched.
	require.Equal(t, uint32(0), perm[0])
	require.Equal(t, uint32(1), perm[1])

	pivot := points.Coord(perm[4], 0)
	for i := 2; i < 4; i++ {
		require.LessOrEqual(t, points.Coord(perm[i], 0), pivot)
	}
	for i := 5; i < 7; i++ {
		require.GreaterOrEqual(t, points.Coord(perm[i], 0), pivot)
	}
}

func TestSelectNthDuplicates(t *testing.T) {
	points := Slice{{2}, {2}, {2}, {1}, {2}, {3}, {2}}

	perm := []uint32{0, 1, 2, 3, 4, 5, 6}
	nth := 3
	selectNth(points, perm, 0, len(perm), nth, 0)

	pivot := points.Coord(perm[nth], 0)
	for i := 0; i < nth; i++ {
		require.LessOrEqual(t, points.Coord(perm[i], 0), pivot)
	}
	for i := nth + 1; i < len(perm); i++ {
		require.GreaterOrEqual(t, points.Coord(perm[i], 0), pivot)
	}
}

func TestMaxNodes(t *testing.T) {
	// maxNodes must match the node count the builder actually produces; the
	// invariants test asserts Cap == Len for built trees, so here only edge
	// values are spelled out.
	require.Equal(t, 1, maxNodes(1, 1))
	require.Equal(t, 1, maxNodes(5, 5))
	require.Equal(t, 3, maxNodes(2, 1))
	require.Equal(t, 7, maxNodes(4, 1))

	// 10 points, leaves of 4: 10 -> 5|5 -> (2|3)(2|3), 7 nodes.
	require.Equal(t, 7, maxNodes(10, 4))
}
