package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const grin = "\U0001F600"

func TestNextGlyphWidth_WideGlyph(t *testing.T) {
	text := FromString("ab" + grin + "x")
	require.Equal(t, 5, text.Len())

	cases := []struct {
		at   int
		want int
	}{
		{at: 0, want: 1},
		{at: 2, want: 2},
		{at: 4, want: 1},
		{at: 5, want: 0},
	}
	for _, tc := range cases {
		got, err := NextGlyphWidth(text, tc.at, true)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "NextGlyphWidth(%d)", tc.at)
	}
}

func TestPrevGlyphWidth_Boundaries(t *testing.T) {
	text := FromString("ab" + grin + "x")

	cases := []struct {
		at   int
		want int
	}{
		{at: 0, want: 0},
		{at: 1, want: 1},
		{at: 2, want: 1},
		{at: 4, want: 2},
		{at: 5, want: 1},
	}
	for _, tc := range cases {
		got, err := PrevGlyphWidth(text, tc.at, true)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "PrevGlyphWidth(%d)", tc.at)
	}
}

func TestGlyphWidth_NarrowModeCountsUnits(t *testing.T) {
	text := FromString(grin + grin)
	for at := 0; at < text.Len(); at++ {
		got, err := GlyphWidth(text, at, false)
		require.NoError(t, err)
		require.Equal(t, 1, got, "GlyphWidth(%d) narrow", at)
	}

	got, err := GlyphWidth(text, 0, true)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	got, err = GlyphWidth(text, text.Len(), true)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestGlyphWidth_LoneSurrogateIsNarrow(t *testing.T) {
	got, err := NextGlyphWidth(Text{0xD83D, 'a', 'b'}, 0, true)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestGlyphWidth_OutOfBounds(t *testing.T) {
	text := FromString("abc")

	_, err := NextGlyphWidth(text, 4, true)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = PrevGlyphWidth(text, 4, true)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = GlyphWidth(text, -1, true)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
