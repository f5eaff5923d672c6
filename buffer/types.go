package buffer

// Coord points into wrapped rows: X is a code-unit index within row Y.
type Coord struct {
	X int
	Y int
}

// CompareCoord orders coordinates by row, then column.
func CompareCoord(a, b Coord) int {
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
