package editor

import (
	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/wrapped"
)

// ScreenToOffset maps viewport-local cell coordinates to a linear offset.
//
// (0,0) is the top-left cell of the visible content. Coordinates outside the
// content clamp to the nearest row and to the end of that row.
func (m Textarea) ScreenToOffset(x, y int) (int, error) {
	h := m.host()
	lines := h.Lines()
	row := clampInt(m.viewport.YOffset+y, 0, len(lines)-1)
	col := wrapped.ColumnForWidth(lines.Row(row), h, max(x, 0))
	return hitOffset(lines, m.value, buffer.Coord{X: col, Y: row}, m.cfg.WideMode)
}

// OffsetToScreen maps a linear offset to viewport-local cell coordinates.
//
// ok is false when the offset is outside the visible rows.
func (m Textarea) OffsetToScreen(off int) (x, y int, ok bool) {
	h := m.host()
	lines := h.Lines()
	abs, err := wrapped.OffsetToCoord(lines, m.value, clampInt(off, 0, len(m.value)))
	if err != nil {
		return 0, 0, false
	}
	x = h.DisplayWidth(lines.Row(abs.Y)[:abs.X])
	y = abs.Y - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	return x, y, x <= m.viewport.Width
}

// ScreenToOffset maps a cell column of the visible window to a linear
// offset. Columns count rendered cells, so a censored glyph is one cell.
func (m Textbox) ScreenToOffset(x int) (int, error) {
	lines := m.host().Lines()
	col := cellColumn(m.cells(), len(lines.Row(0)), m.xOffset+max(x, 0))
	return hitOffset(lines, m.value, buffer.Coord{X: col}, m.cfg.WideMode)
}

// hitOffset converts a clicked coordinate to an offset. A click at the end of
// a soft-wrapped row stays on that row instead of snapping to the next one.
func hitOffset(lines wrapped.Lines, value buffer.Text, c buffer.Coord, wide bool) (int, error) {
	off, err := wrapped.CoordToOffsetPolicy(lines, value, c, wrapped.KeepSeparator)
	if err != nil {
		return 0, err
	}
	abs, err := wrapped.OffsetToCoord(lines, value, off)
	if err != nil {
		return 0, err
	}
	if abs.Y == c.Y || off == 0 {
		return off, nil
	}
	w, err := buffer.PrevGlyphWidth(value, off, wide)
	if err != nil {
		return 0, err
	}
	return off - w, nil
}

// cellColumn returns the row index of the first glyph in cs that starts at or
// after cell x, or end when the row is narrower.
func cellColumn(cs []glyphCell, end, x int) int {
	col := 0
	for _, c := range cs {
		if col >= x {
			return c.at
		}
		col += c.cells
	}
	return end
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
