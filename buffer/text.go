package buffer

import "unicode/utf16"

const (
	// Newline separates logical lines in a Text. Wrapped rows never contain it.
	Newline uint16 = '\n'

	// Marker is the continuation marker placed after a double-width glyph in
	// a wrapped row. It occupies the glyph's second cell and is not part of
	// the buffer.
	Marker uint16 = 0x03
)

// Text is a sequence of UTF-16 code units.
type Text []uint16

// FromString encodes s as UTF-16.
func FromString(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text(utf16.Encode([]rune(s)))
}

// String decodes t. Unpaired surrogates decode to U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

func (t Text) Len() int { return len(t) }

// At returns the code unit at i, or 0 when i is out of range.
func (t Text) At(i int) uint16 {
	if i < 0 || i >= len(t) {
		return 0
	}
	return t[i]
}

// Clone returns a copy of t that shares no storage with it.
func (t Text) Clone() Text {
	out := make(Text, len(t))
	copy(out, t)
	return out
}

// Equal reports whether t and o hold the same code units.
func (t Text) Equal(o Text) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// UnitLen returns the number of code units in t that belong to the buffer,
// that is, every unit except continuation markers.
func (t Text) UnitLen() int {
	n := 0
	for _, u := range t {
		if u != Marker {
			n++
		}
	}
	return n
}
