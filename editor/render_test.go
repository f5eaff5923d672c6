package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/texty/wrapped"
)

func TestRender_CursorOnlyWhileListening(t *testing.T) {
	st := Style{Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := NewTextarea(Config{Value: "ab", Style: st, Width: 10, Height: 2})
	require.Equal(t, "ab", m.renderContent())

	m = listening(t, m)
	require.Equal(t, "ab   ", m.renderContent())

	m, _ = send(m, keyOf(tea.KeyLeft))
	require.Equal(t, "a b ", m.renderContent())
}

func TestRender_WideGlyphsSkipMarkers(t *testing.T) {
	m := NewTextarea(Config{Value: "a\U0001F600b\n中", WideMode: true, Width: 10, Height: 3})
	require.Equal(t, "a\U0001F600b\n中", m.renderContent())
}

func TestRender_NarrowModeMasksWideUnits(t *testing.T) {
	m := NewTextarea(Config{Value: "中b\U0001F600", Width: 10, Height: 1})
	require.Equal(t, "?b??", m.renderContent())
}

func TestRender_ControlRunesAsSpaces(t *testing.T) {
	m := NewTextarea(Config{Value: "a\tb", Width: 10, Height: 1})
	require.Equal(t, "a b", m.renderContent())
}

func TestRender_WrappedRows(t *testing.T) {
	m := NewTextarea(Config{Value: "one two three", Width: 8, Height: 5})
	require.Equal(t, "one two \nthree", m.renderContent())

	g := NewTextarea(Config{Value: "abcdef", Width: 4, Height: 5, WrapMode: wrapped.WrapGlyph})
	require.Equal(t, "abcd\nef", g.renderContent())
}

func TestRender_CursorStyleEmitsANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := NewTextarea(Config{
		Value:  "ab",
		Width:  10,
		Height: 1,
		Style:  Style{Text: r.NewStyle(), Cursor: r.NewStyle().Reverse(true)},
	})
	m = listening(t, m)

	got := m.renderContent()
	require.True(t, strings.HasPrefix(got, "ab"), "got %q", got)
	require.Contains(t, got, "\x1b[7m")
}

func TestRender_ViewIsClippedToViewport(t *testing.T) {
	m := NewTextarea(Config{Value: "0\n1\n2\n3", Width: 3, Height: 2})
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "2", strings.TrimRight(lines[0], " "))
	require.Equal(t, "3", strings.TrimRight(lines[1], " "))
}
