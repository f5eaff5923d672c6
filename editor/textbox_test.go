package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/texty/buffer"
)

func TestTextbox_StripsNewlines(t *testing.T) {
	m := NewTextbox(Config{Value: "a\nb"})
	require.Equal(t, "ab", m.Value())

	m = m.SetValue("c\nd\x03\n")
	require.Equal(t, "cd", m.Value())
	require.Equal(t, 2, m.Caret().Linear())

	m = listeningBox(t, m)
	m, _ = send(m, keyOf(tea.KeyLeft), paste("x\ny"))
	require.Equal(t, "cxyd", m.Value())
	require.Equal(t, 3, m.Caret().Linear())
}

func TestTextbox_EnterSubmits(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{ID: "q", Value: "go"}))

	m, msgs := send(m, keyOf(tea.KeyEnter))
	require.False(t, m.Reading())
	require.Equal(t, "go", m.Value())
	require.Equal(t, []tea.Msg{
		SubmitMsg{ID: "q", Value: "go"},
		ActionMsg{ID: "q", Value: "go"},
	}, msgs)
}

func TestTextbox_VerticalKeysAreNoOps(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{Value: "abc"}))
	m, _ = send(m, keyOf(tea.KeyLeft))
	before := m.Caret()

	m, msgs := send(m, keyOf(tea.KeyUp), keyOf(tea.KeyDown))
	require.Empty(t, msgs)
	require.Equal(t, before, m.Caret())
}

func TestTextbox_HorizontalWindowFollowsCaret(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{Width: 3}))

	m, _ = send(m, runes("abcdef"))
	require.Equal(t, 4, m.ViewportState().LeftCell)
	require.Equal(t, "ef ", m.View())

	for range 4 {
		m, _ = send(m, keyOf(tea.KeyLeft))
	}
	require.Equal(t, 2, m.Caret().Linear())
	require.Equal(t, 2, m.ViewportState().LeftCell)
	require.Equal(t, "cde", m.View())

	m, _ = send(m, keyOf(tea.KeyRight), keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	require.Equal(t, 5, m.Caret().Linear())
	require.Equal(t, 3, m.ViewportState().LeftCell)
}

func TestTextbox_WideGlyphWindow(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{Value: "中文", Width: 3, WideMode: true}))

	require.Equal(t, buffer.Coord{X: 4, Y: 0}, m.Caret().Relative())
	require.Equal(t, 2, m.ViewportState().LeftCell)
	require.Equal(t, "文 ", m.View())
}

func TestTextbox_SetWidthRecomputesWindow(t *testing.T) {
	m := NewTextbox(Config{Value: "abcdef"})
	require.Equal(t, 0, m.ViewportState().LeftCell)

	m = m.SetWidth(4)
	require.Equal(t, 3, m.ViewportState().LeftCell)

	m = m.SetWidth(0)
	require.Equal(t, 0, m.ViewportState().LeftCell)
}

func TestTextbox_SecretAndCensor(t *testing.T) {
	censored := NewTextbox(Config{Value: "pa" + "\U0001F600", Censor: true, WideMode: true})
	require.Equal(t, "***", censored.View())

	secret := NewTextbox(Config{Value: "hidden", Secret: true})
	require.Equal(t, "", secret.View())

	secret = listeningBox(t, secret)
	require.Equal(t, " ", secret.View())
	require.Equal(t, 0, secret.ViewportState().LeftCell)
}

func TestTextbox_LeftClickPlacesCaret(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{Value: "hello", Width: 10}))

	m, _ = send(m, press(tea.MouseButtonLeft, 2, 0))
	require.Equal(t, 2, m.Caret().Linear())

	m, _ = send(m, press(tea.MouseButtonLeft, 8, 0))
	require.Equal(t, 5, m.Caret().Linear())

	m, _ = send(m, press(tea.MouseButtonLeft, 1, 1))
	require.Equal(t, 5, m.Caret().Linear(), "clicks below the row are ignored")
}

func TestTextbox_CancelKeepsValue(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{ID: "q"}))
	m, _ = send(m, runes("hi"))

	m, msgs := send(m, keyOf(tea.KeyEsc))
	require.Equal(t, "hi", m.Value())
	require.Equal(t, []tea.Msg{
		CancelMsg{ID: "q", Value: "hi"},
		ActionMsg{ID: "q", Value: "hi", Canceled: true},
	}, msgs)
}

func TestTextbox_CensoredClickCountsRenderedCells(t *testing.T) {
	m := listeningBox(t, NewTextbox(Config{Value: "中文ab", Censor: true, WideMode: true, Width: 10}))

	m, msgs := send(m, press(tea.MouseButtonLeft, 2, 0))
	require.Empty(t, msgs)
	require.Equal(t, 2, m.Caret().Linear())

	m, _ = send(m, press(tea.MouseButtonLeft, 1, 0))
	require.Equal(t, 1, m.Caret().Linear())

	off, err := m.ScreenToOffset(9)
	require.NoError(t, err)
	require.Equal(t, 4, off)
}
