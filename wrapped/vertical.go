package wrapped

import "github.com/iw2rmb/texty/buffer"

// Measurer reports display widths the way the host renders them.
type Measurer interface {
	DisplayWidth(t buffer.Text) int
	WideMode() bool
}

// Direction selects the row VerticalTarget moves to.
type Direction int

const (
	Up Direction = iota
	Down
)

// VerticalTarget returns the coordinate one row up or down from from that
// keeps the caret at the same display column.
//
// When the target row is narrower than that column the result clamps to the
// row end. At the first row (Up) or last row (Down) from is returned as is.
func VerticalTarget(lines Lines, m Measurer, from buffer.Coord, dir Direction) (buffer.Coord, error) {
	if from.Y < 0 || from.Y >= len(lines) {
		return from, outOfBounds("row", from.Y, len(lines))
	}
	row := lines[from.Y]
	if from.X < 0 || from.X > len(row) {
		return from, outOfBounds("column", from.X, len(row))
	}

	y := from.Y
	switch dir {
	case Up:
		if y == 0 {
			return from, nil
		}
		y--
	case Down:
		if y+1 >= len(lines) {
			return from, nil
		}
		y++
	default:
		return from, nil
	}

	width := m.DisplayWidth(row[:from.X])
	return buffer.Coord{X: ColumnForWidth(lines[y], m, width), Y: y}, nil
}

// ColumnForWidth returns the code-unit index in row at which the cumulative
// display width first reaches width, or the row length when the whole row is
// narrower.
func ColumnForWidth(row buffer.Text, m Measurer, width int) int {
	if m.DisplayWidth(row) <= width {
		return len(row)
	}

	pos, cells := 0, 0
	for pos < len(row) && cells < width {
		n, err := buffer.NextGlyphWidth(row, pos, m.WideMode())
		if err != nil || n == 0 {
			break
		}
		cells += m.DisplayWidth(row[pos : pos+n])
		pos += n
	}
	return pos
}
