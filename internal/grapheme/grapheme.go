// Package grapheme measures glyphs of UTF-16 text in terminal cells.
package grapheme

import (
	"unicode"
	"unicode/utf16"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// marker mirrors buffer.Marker; this package sits below buffer.
const marker = 0x03

// Glyph describes the glyph starting at some code-unit offset.
type Glyph struct {
	Rune   rune
	Units  int // code units consumed
	Cells  int // terminal cells occupied
	Marker bool
}

// At returns the glyph starting at units[at]. The zero Glyph is returned at
// or past the end.
//
// With wide disabled every code unit is one glyph of one cell. With wide
// enabled surrogate pairs decode to one glyph and cell widths come from the
// rune's East Asian width.
func At(units []uint16, at int, wide bool) Glyph {
	if at < 0 || at >= len(units) {
		return Glyph{}
	}
	u := units[at]
	if u == marker {
		return Glyph{Rune: marker, Units: 1, Cells: 0, Marker: true}
	}
	if !wide {
		return Glyph{Rune: rune(u), Units: 1, Cells: 1}
	}

	r := rune(u)
	n := 1
	if utf16.IsSurrogate(r) {
		if at+1 < len(units) {
			if dec := utf16.DecodeRune(r, rune(units[at+1])); dec != unicode.ReplacementChar {
				r, n = dec, 2
			}
		}
		if n == 1 {
			return Glyph{Rune: unicode.ReplacementChar, Units: 1, Cells: 1}
		}
	}
	return Glyph{Rune: r, Units: n, Cells: RuneCells(r)}
}

// RuneCells returns the number of terminal cells r occupies.
func RuneCells(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w == 0 && !unicode.In(r, unicode.Mn, unicode.Me) {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Width sums the cell widths of every glyph in units.
func Width(units []uint16, wide bool) int {
	total := 0
	for at := 0; at < len(units); {
		g := At(units, at, wide)
		total += g.Cells
		at += g.Units
	}
	return total
}

// IsSpace reports whether g is whitespace for word wrapping.
func IsSpace(g Glyph) bool {
	return !g.Marker && g.Units > 0 && unicode.IsSpace(g.Rune)
}
