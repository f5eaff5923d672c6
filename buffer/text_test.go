package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText_RoundTripsThroughUTF16(t *testing.T) {
	s := "ab\n" + grin + "中"
	text := FromString(s)
	require.Equal(t, 6, text.Len())
	require.Equal(t, s, text.String())
}

func TestText_AtOutOfRange(t *testing.T) {
	text := FromString("a\n")
	require.Equal(t, Newline, text.At(1))
	require.Zero(t, text.At(2))
	require.Zero(t, text.At(-1))
}

func TestText_UnitLenSkipsMarkers(t *testing.T) {
	require.Equal(t, 3, Text{'a', 0x4e2d, Marker, 'b'}.UnitLen())
}
