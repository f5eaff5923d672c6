package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareCoord(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		require.Negative(t, CompareCoord(Coord{X: 0, Y: 0}, Coord{X: 0, Y: 1}))
		require.Positive(t, CompareCoord(Coord{X: 0, Y: 2}, Coord{X: 999, Y: 1}))
	})

	t.Run("column", func(t *testing.T) {
		require.Negative(t, CompareCoord(Coord{X: 0, Y: 1}, Coord{X: 1, Y: 1}))
		require.Positive(t, CompareCoord(Coord{X: 2, Y: 1}, Coord{X: 1, Y: 1}))
	})

	require.Zero(t, CompareCoord(Coord{X: 3, Y: 4}, Coord{X: 3, Y: 4}))
}

func TestClampInt(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{v: -1, lo: 0, hi: 5, want: 0},
		{v: 3, lo: 0, hi: 5, want: 3},
		{v: 9, lo: 0, hi: 5, want: 5},
		{v: 2, lo: 4, hi: 1, want: 4},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, clampInt(tc.v, tc.lo, tc.hi), "clampInt(%d, %d, %d)", tc.v, tc.lo, tc.hi)
	}
}
