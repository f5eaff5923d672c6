package wrapped

import "github.com/iw2rmb/texty/buffer"

// SeparatorPolicy controls what CoordToOffsetPolicy does with an offset that
// lands on a newline separator.
type SeparatorPolicy uint8

const (
	// SkipSeparator advances past the separator.
	SkipSeparator SeparatorPolicy = iota
	// KeepSeparator leaves the offset in front of the separator.
	KeepSeparator
)

// OffsetToCoord converts a linear offset in buf to a coordinate in lines.
//
// An offset at the end of a row snaps to the start of the following row,
// except on the final row. Newline separators in buf that coincide with a
// row boundary are consumed once.
func OffsetToCoord(lines Lines, buf buffer.Text, off int) (buffer.Coord, error) {
	if off < 0 || off > len(buf) {
		return buffer.Coord{}, outOfBounds("offset", off, len(buf))
	}
	if off == 0 {
		return buffer.Coord{}, nil
	}

	chars := 0
	last := buffer.Coord{}
	for y, row := range lines {
		x := 0
		for ; x < len(row); x++ {
			// A trailing marker closes the row's last glyph; an offset there
			// is the row end.
			if chars == off && !(x == len(row)-1 && row[x] == buffer.Marker) {
				return buffer.Coord{X: x, Y: y}, nil
			}
			if row[x] != buffer.Marker {
				chars++
			}
		}
		last = buffer.Coord{X: x, Y: y}

		if buf.At(chars) == buffer.Newline {
			chars++
		}
		if chars == off {
			if y+1 < len(lines) {
				return buffer.Coord{X: 0, Y: y + 1}, nil
			}
			return last, nil
		}
		if chars > off {
			return last, nil
		}
	}

	return buffer.Coord{}, &CorruptStateError{Offset: off, Last: last, Rows: len(lines)}
}

// CoordToOffset converts a coordinate in lines to a linear offset in buf
// using SkipSeparator.
func CoordToOffset(lines Lines, buf buffer.Text, c buffer.Coord) (int, error) {
	return CoordToOffsetPolicy(lines, buf, c, SkipSeparator)
}

// CoordToOffsetPolicy converts a coordinate in lines to a linear offset in
// buf. Continuation markers in the rows are not counted.
func CoordToOffsetPolicy(lines Lines, buf buffer.Text, c buffer.Coord, p SeparatorPolicy) (int, error) {
	if c.Y < 0 || c.Y >= len(lines) {
		return 0, outOfBounds("row", c.Y, len(lines))
	}
	row := lines[c.Y]
	if c.X < 0 || c.X > len(row) {
		return 0, outOfBounds("column", c.X, len(row))
	}

	agg := 0
	for y := 0; y < c.Y; y++ {
		agg += lines[y].UnitLen()
		if buf.At(agg) == buffer.Newline {
			agg++
		}
	}

	pos := agg + row[:c.X].UnitLen()
	if p == SkipSeparator && buf.At(pos) == buffer.Newline {
		pos++
	}
	if pos > len(buf) {
		return 0, &CorruptStateError{Offset: pos, Last: c, Rows: len(lines)}
	}
	return pos, nil
}
