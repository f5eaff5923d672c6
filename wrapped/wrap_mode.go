package wrapped

// Mode controls where Reflow breaks logical lines that exceed the width.
//
// WrapWord breaks after the last whitespace run that fits and falls back to a
// glyph break for words longer than the width. WrapGlyph breaks at any glyph.
type Mode int

const (
	WrapWord Mode = iota
	WrapGlyph
)

func (m Mode) String() string {
	switch m {
	case WrapWord:
		return "word"
	case WrapGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}
