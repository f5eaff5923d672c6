package buffer

import (
	"unicode"
	"unicode/utf16"
)

// GlyphWidth returns the number of code units of the glyph starting at at.
//
// With wide disabled every code unit is its own glyph. With wide enabled a
// surrogate pair counts as one glyph of two units. At the end of t the
// result is 0.
func GlyphWidth(t Text, at int, wide bool) (int, error) {
	if at < 0 || at > len(t) {
		return 0, outOfBounds(at, len(t))
	}
	if at == len(t) {
		return 0, nil
	}
	if at+1 == len(t) {
		return 1, nil
	}
	return pairWidth(t[at], t[at+1], wide), nil
}

// NextGlyphWidth returns the width in code units of the glyph after the
// cursor offset at.
func NextGlyphWidth(t Text, at int, wide bool) (int, error) {
	if at < 0 || at > len(t) {
		return 0, outOfBounds(at, len(t))
	}
	switch at {
	case len(t):
		return 0, nil
	case len(t) - 1:
		return 1, nil
	}
	return pairWidth(t[at], t[at+1], wide), nil
}

// PrevGlyphWidth returns the width in code units of the glyph before the
// cursor offset at.
func PrevGlyphWidth(t Text, at int, wide bool) (int, error) {
	if at < 0 || at > len(t) {
		return 0, outOfBounds(at, len(t))
	}
	switch at {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}
	return pairWidth(t[at-2], t[at-1], wide), nil
}

// IsSurrogatePair reports whether hi and lo encode one supplementary rune.
func IsSurrogatePair(hi, lo uint16) bool {
	if !utf16.IsSurrogate(rune(hi)) || !utf16.IsSurrogate(rune(lo)) {
		return false
	}
	return utf16.DecodeRune(rune(hi), rune(lo)) != unicode.ReplacementChar
}

func pairWidth(a, b uint16, wide bool) int {
	if wide && IsSurrogatePair(a, b) {
		return 2
	}
	return 1
}
