package buffer

// Insert returns a new Text with s spliced in before at.
func Insert(t Text, s Text, at int) (Text, error) {
	if at < 0 || at > len(t) {
		return nil, outOfBounds(at, len(t))
	}
	out := make(Text, 0, len(t)+len(s))
	out = append(out, t[:at]...)
	out = append(out, s...)
	out = append(out, t[at:]...)
	return out, nil
}

// DeleteRange returns a new Text with n code units removed, ending at at.
//
// A negative at is measured from the end of t. The deletion window is
// clamped into t: if it would start before 0 it starts at 0.
func DeleteRange(t Text, n int, at int) Text {
	if n <= 0 {
		return t.Clone()
	}

	end := at
	if at < 0 {
		end = len(t) + at
	}
	end = clampInt(end, 0, len(t))
	start := end - n
	if start < 0 {
		start = 0
	}

	out := make(Text, 0, len(t)-(end-start))
	out = append(out, t[:start]...)
	out = append(out, t[end:]...)
	return out
}
