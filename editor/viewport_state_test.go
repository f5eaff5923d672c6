package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/texty/wrapped"
)

func TestViewportState_Textarea(t *testing.T) {
	m := NewTextarea(Config{Value: "abcd efgh ij", Width: 4, Height: 2, WrapMode: wrapped.WrapGlyph})

	require.Equal(t, ViewportState{
		TopRow:      1,
		VisibleRows: 2,
		TotalRows:   3,
		WrapMode:    wrapped.WrapGlyph,
	}, m.ViewportState())
	require.Equal(t, 2, m.Caret().Relative().Y+m.ViewportState().TopRow)
}

func TestViewportState_Textbox(t *testing.T) {
	m := NewTextbox(Config{Value: "abcdefgh", Width: 3})

	st := m.ViewportState()
	require.Equal(t, 1, st.VisibleRows)
	require.Equal(t, 1, st.TotalRows)
	require.Equal(t, 6, st.LeftCell)
}
