package texty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion_Valid(t *testing.T) {
	require.True(t, ValidVersion(Version()), "embedded version %q", Version())
}

func TestBanner(t *testing.T) {
	require.Equal(t, "texty-demo v"+Version(), Banner("texty-demo"))
	require.Equal(t, "v"+Version(), Tag())
}

func TestValidVersion(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":          true,
		" 1.0.0\n":       true,
		"1.2.3-rc.1":     true,
		"1.2.3+sha.5114": true,
		"v1.2.3":         false,
		"1.2":            false,
		"1.02.3":         false,
		"":               false,
	}
	for v, want := range cases {
		require.Equal(t, want, ValidVersion(v), "ValidVersion(%q)", v)
	}
}
