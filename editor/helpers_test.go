package editor

import (
	"errors"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// collect runs cmd and flattens batched and sequenced commands into the
// messages they produce, in order.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	rv := reflect.ValueOf(msg)
	if rv.Kind() == reflect.Slice && rv.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < rv.Len(); i++ {
			sub, _ := rv.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

type updater[T any] interface {
	Update(tea.Msg) (T, tea.Cmd)
}

// send feeds msgs to m in order and returns the messages its commands
// produced. Produced messages are not fed back.
func send[T updater[T]](m T, msgs ...tea.Msg) (T, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		out = append(out, collect(cmd)...)
	}
	return m, out
}

func listening(t *testing.T, m Textarea) Textarea {
	t.Helper()
	m, cmd := m.ReadInput()
	m, _ = send(m, collect(cmd)...)
	require.True(t, m.Listening())
	return m
}

func listeningBox(t *testing.T, m Textbox) Textbox {
	t.Helper()
	m, cmd := m.ReadInput()
	m, _ = send(m, collect(cmd)...)
	require.True(t, m.Listening())
	return m
}

func runes(s string) tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func paste(s string) tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true} }
func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func press(b tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: b, X: x, Y: y}
}

type stubClipboard struct {
	text string
	err  error
}

func (c stubClipboard) ReadText() (string, error) { return c.text, c.err }

var errClipboard = errors.New("clipboard unavailable")
