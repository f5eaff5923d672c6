package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/texty/caret"
)

// SubmitMsg is sent when a read finishes with a submit.
type SubmitMsg struct {
	ID    string
	Value string
}

// CancelMsg is sent when a read finishes with a cancel.
type CancelMsg struct {
	ID    string
	Value string
}

// ActionMsg follows every SubmitMsg and CancelMsg.
type ActionMsg struct {
	ID       string
	Value    string
	Canceled bool
}

// ErrorMsg reports a failed caret operation or external editor run. The
// widget stays usable.
type ErrorMsg struct {
	ID  string
	Err error
}

func (e ErrorMsg) Error() string { return e.Err.Error() }

// ChangeEvent is passed to Config.OnChange after every change of the value.
type ChangeEvent struct {
	ID    string
	Value string
	Caret caret.Caret
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func finishCmd(id, value string, canceled bool) tea.Cmd {
	var first tea.Msg = SubmitMsg{ID: id, Value: value}
	if canceled {
		first = CancelMsg{ID: id, Value: value}
	}
	return tea.Sequence(
		msgCmd(first),
		msgCmd(ActionMsg{ID: id, Value: value, Canceled: canceled}),
	)
}
