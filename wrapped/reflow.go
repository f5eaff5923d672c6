package wrapped

import (
	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/internal/grapheme"
)

// Lines is a snapshot of wrapped display rows.
type Lines []buffer.Text

// Row returns row y, or nil when y is out of range.
func (l Lines) Row(y int) buffer.Text {
	if y < 0 || y >= len(l) {
		return nil
	}
	return l[y]
}

type wrapGlyph struct {
	start int
	units int
	cells int
	space bool
}

// Reflow wraps t into display rows of at most width cells.
//
// A width <= 0 disables wrapping. An empty t yields a single empty row and a
// trailing newline yields a trailing empty row.
func Reflow(t buffer.Text, width int, wide bool, mode Mode) Lines {
	out := make(Lines, 0, 1)
	start := 0
	for i := 0; i <= len(t); i++ {
		if i < len(t) && t[i] != buffer.Newline {
			continue
		}
		out = append(out, wrapLine(t[start:i], width, wide, mode)...)
		start = i + 1
	}
	return out
}

func wrapLine(line buffer.Text, width int, wide bool, mode Mode) Lines {
	glyphs := make([]wrapGlyph, 0, len(line))
	for at := 0; at < len(line); {
		g := grapheme.At(line, at, wide)
		if g.Marker {
			// Stray markers are layout artifacts; drop them so they are
			// re-derived from the glyph widths.
			at++
			continue
		}
		glyphs = append(glyphs, wrapGlyph{
			start: at,
			units: g.Units,
			cells: g.Cells,
			space: grapheme.IsSpace(g),
		})
		at += g.Units
	}

	if width <= 0 {
		return Lines{emitRow(line, glyphs, wide)}
	}

	var rows Lines
	segStart := 0
	used := 0
	lastBreak := -1
	for i := 0; i < len(glyphs); {
		g := glyphs[i]
		if used > 0 && used+g.cells > width {
			end := i
			if mode == WrapWord && lastBreak > segStart {
				end = lastBreak
			}
			rows = append(rows, emitRow(line, glyphs[segStart:end], wide))
			segStart = end
			used = cellsOf(glyphs[segStart:i])
			lastBreak = -1
			continue
		}
		used += g.cells
		if mode == WrapWord && g.space {
			lastBreak = i + 1
		}
		i++
	}
	rows = append(rows, emitRow(line, glyphs[segStart:], wide))
	return rows
}

func emitRow(line buffer.Text, glyphs []wrapGlyph, wide bool) buffer.Text {
	row := make(buffer.Text, 0, len(glyphs)*2)
	for _, g := range glyphs {
		row = append(row, line[g.start:g.start+g.units]...)
		if wide && g.cells == 2 {
			row = append(row, buffer.Marker)
		}
	}
	return row
}

func cellsOf(glyphs []wrapGlyph) int {
	n := 0
	for _, g := range glyphs {
		n += g.cells
	}
	return n
}
