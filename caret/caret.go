package caret

import (
	"fmt"

	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/wrapped"
)

// Caret is the insertion point of a text widget.
//
// Linear, Absolute and Relative always describe the same position; every
// method that changes one recomputes the others. A failed operation leaves
// the caret and the host buffer as they were.
type Caret struct {
	linear   int
	absolute buffer.Coord
	relative buffer.Coord
}

// Linear returns the offset into the host buffer, in code units.
func (c Caret) Linear() int { return c.linear }

// Absolute returns the (column, row) position in the wrapped rows.
func (c Caret) Absolute() buffer.Coord { return c.absolute }

// Relative returns the on-screen position: the display column and the row
// relative to the host's scroll base.
func (c Caret) Relative() buffer.Coord { return c.relative }

func (c Caret) String() string {
	return fmt.Sprintf("caret{linear:%d abs:(%d,%d) rel:(%d,%d)}",
		c.linear, c.absolute.X, c.absolute.Y, c.relative.X, c.relative.Y)
}

// MoveLeft moves back by one glyph, or by n[0] code units when given.
// It is a no-op at the start of the buffer.
func (c *Caret) MoveLeft(h Host, n ...int) error {
	if c.linear == 0 {
		return nil
	}

	step := 0
	if len(n) > 0 {
		step = n[0]
	} else {
		w, err := buffer.PrevGlyphWidth(h.Value(), c.linear, h.WideMode())
		if err != nil {
			return err
		}
		step = w
	}
	if step <= 0 {
		return nil
	}

	next := c.linear - step
	if next < 0 {
		next = 0
	}
	return c.settle(h, next)
}

// MoveRight moves forward by one glyph. It is a no-op at the end of the
// buffer.
func (c *Caret) MoveRight(h Host) error {
	value := h.Value()
	if c.linear >= len(value) {
		return nil
	}
	w, err := buffer.NextGlyphWidth(value, c.linear, h.WideMode())
	if err != nil {
		return err
	}
	return c.settle(h, c.linear+w)
}

// MoveUp moves to the previous row, keeping the display column.
func (c *Caret) MoveUp(h Host) error { return c.moveVertical(h, wrapped.Up) }

// MoveDown moves to the next row, keeping the display column.
func (c *Caret) MoveDown(h Host) error { return c.moveVertical(h, wrapped.Down) }

func (c *Caret) moveVertical(h Host, dir wrapped.Direction) error {
	value := h.Value()
	lines := h.Lines()

	from := c.absolute
	if from.Y >= len(lines) || from.X > len(lines.Row(from.Y)) {
		// Rows changed since the last move; start from the linear offset.
		abs, err := wrapped.OffsetToCoord(lines, value, c.linear)
		if err != nil {
			return err
		}
		from = abs
	}

	target, err := wrapped.VerticalTarget(lines, h, from, dir)
	if err != nil {
		return err
	}
	if target == from {
		return nil
	}

	// Keep the separator so a caret at the end of a short line stays on it.
	linear, err := wrapped.CoordToOffsetPolicy(lines, value, target, wrapped.KeepSeparator)
	if err != nil {
		return err
	}

	// The end of a soft-wrapped row is the start of the next row. Stop in
	// front of the row's last glyph instead.
	abs, err := wrapped.OffsetToCoord(lines, value, linear)
	if err != nil {
		return err
	}
	if abs.Y != target.Y && linear > 0 {
		w, err := buffer.PrevGlyphWidth(value, linear, h.WideMode())
		if err != nil {
			return err
		}
		return c.settle(h, linear-w)
	}

	c.linear = linear
	c.absolute = target
	c.relative = relativeOf(h, lines, target)
	return nil
}

// Insert splices t into the host buffer at the caret and moves the caret
// past it. When the caret cannot settle the host buffer is restored.
func (c *Caret) Insert(h Editable, t buffer.Text) error {
	if len(t) == 0 {
		return nil
	}
	before := h.Value()
	next, err := buffer.Insert(before, t, c.linear)
	if err != nil {
		return err
	}
	h.SetValue(next)

	delta := len(h.Value()) - len(before)
	if err := c.settle(h, clampLinear(c.linear+delta, len(h.Value()))); err != nil {
		h.SetValue(before)
		return err
	}
	return nil
}

// Delete removes n code units before the caret and moves the caret back by
// the number of units removed.
func (c *Caret) Delete(h Editable, n int) error {
	if n <= 0 || c.linear == 0 {
		return nil
	}
	before := h.Value()
	h.SetValue(buffer.DeleteRange(before, n, c.linear))

	removed := len(before) - len(h.Value())
	if err := c.settle(h, clampLinear(c.linear-removed, len(h.Value()))); err != nil {
		h.SetValue(before)
		return err
	}
	return nil
}

// Backspace deletes the glyph before the caret.
func (c *Caret) Backspace(h Editable) error {
	w, err := buffer.PrevGlyphWidth(h.Value(), c.linear, h.WideMode())
	if err != nil {
		return err
	}
	return c.Delete(h, w)
}

// Apply performs ev against h.
func (c *Caret) Apply(h Editable, ev Event) error {
	switch ev.Kind {
	case EventLeft:
		if ev.Len > 0 {
			return c.MoveLeft(h, ev.Len)
		}
		return c.MoveLeft(h)
	case EventRight:
		return c.MoveRight(h)
	case EventUp:
		return c.MoveUp(h)
	case EventDown:
		return c.MoveDown(h)
	case EventInsert:
		return c.Insert(h, ev.Text)
	case EventDelete:
		if ev.Len == 0 {
			return c.Backspace(h)
		}
		return c.Delete(h, ev.Len)
	default:
		return fmt.Errorf("caret: unknown event %v", ev.Kind)
	}
}

// SetLinear places the caret at off, clamped into the buffer and moved off
// the second half of a wide glyph.
func (c *Caret) SetLinear(h Host, off int) error {
	value := h.Value()
	off = clampLinear(off, len(value))
	if h.WideMode() && off > 0 && off < len(value) && buffer.IsSurrogatePair(value[off-1], value[off]) {
		off--
	}
	return c.settle(h, off)
}

// Refresh recomputes the coordinates from the linear offset. Hosts call it
// after the rows change without a caret operation, for example on resize.
func (c *Caret) Refresh(h Host) error {
	return c.SetLinear(h, c.linear)
}

// Rescroll recomputes the relative position after the host's scroll base
// changed. The absolute position is kept.
func (c *Caret) Rescroll(h Host) error {
	lines := h.Lines()
	if c.absolute.Y >= len(lines) || c.absolute.X > len(lines.Row(c.absolute.Y)) {
		return c.Refresh(h)
	}
	c.relative = relativeOf(h, lines, c.absolute)
	return nil
}

func (c *Caret) settle(h Host, linear int) error {
	lines := h.Lines()
	abs, err := wrapped.OffsetToCoord(lines, h.Value(), linear)
	if err != nil {
		return err
	}
	c.linear = linear
	c.absolute = abs
	c.relative = relativeOf(h, lines, abs)
	return nil
}

func relativeOf(h Host, lines wrapped.Lines, abs buffer.Coord) buffer.Coord {
	row := lines.Row(abs.Y)
	x := abs.X
	if x > len(row) {
		x = len(row)
	}
	return buffer.Coord{
		X: h.DisplayWidth(row[:x]),
		Y: abs.Y - h.ScrollBase(),
	}
}

func clampLinear(off, n int) int {
	if off < 0 {
		return 0
	}
	if off > n {
		return n
	}
	return off
}
