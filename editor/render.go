package editor

import (
	"strings"
	"unicode/utf16"

	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/internal/grapheme"
)

// glyphCell is one rendered glyph of a row.
type glyphCell struct {
	at    int // code-unit index in the row
	text  string
	cells int
}

// rowCells splits row into rendered glyphs. Continuation markers produce no
// output of their own.
func rowCells(row buffer.Text, wide bool) []glyphCell {
	out := make([]glyphCell, 0, len(row))
	for at := 0; at < len(row); {
		g := grapheme.At(row, at, wide)
		if g.Units == 0 {
			break
		}
		if g.Marker {
			at++
			continue
		}
		out = append(out, glyphCell{at: at, text: glyphText(g, wide), cells: g.Cells})
		at += g.Units
	}
	return out
}

func glyphText(g grapheme.Glyph, wide bool) string {
	r := g.Rune
	switch {
	case r < 0x20 || r == 0x7f:
		return " "
	case !wide && (utf16.IsSurrogate(r) || grapheme.RuneCells(r) != 1):
		// One cell per code unit; anything wider would break the grid.
		return "?"
	}
	return string(r)
}

func censorCells(cs []glyphCell) []glyphCell {
	out := make([]glyphCell, len(cs))
	for i, c := range cs {
		out[i] = glyphCell{at: c.at, text: "*", cells: 1}
	}
	return out
}

// columnOf returns the number of cells rendered before code-unit index at.
func columnOf(cs []glyphCell, at int) int {
	col := 0
	for _, c := range cs {
		if c.at >= at {
			break
		}
		col += c.cells
	}
	return col
}

// renderCells renders cs with the cursor on the first glyph at or after
// code-unit index cursor. A negative cursor hides it; a cursor past the last
// glyph is drawn as a trailing space.
func renderCells(st Style, text func(string) string, cs []glyphCell, cursor int) string {
	if text == nil {
		text = func(s string) string { return st.Text.Render(s) }
	}

	var before, after strings.Builder
	cur := -1
	for i, c := range cs {
		switch {
		case cursor >= 0 && cur < 0 && c.at >= cursor:
			cur = i
		case cur >= 0:
			after.WriteString(c.text)
		default:
			before.WriteString(c.text)
		}
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(text(before.String()))
	}
	switch {
	case cur >= 0:
		sb.WriteString(st.Cursor.Render(cs[cur].text))
	case cursor >= 0:
		sb.WriteString(st.Cursor.Render(" "))
	}
	if after.Len() > 0 {
		sb.WriteString(text(after.String()))
	}
	return sb.String()
}
