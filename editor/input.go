package editor

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/caret"
	"github.com/iw2rmb/texty/wrapped"
)

// inputState tracks whether a widget is reading keys.
//
// ReadInput moves idle to armed and returns a command producing listenMsg;
// the widget starts listening when that message arrives, so the key that
// started the read is never handled as input.
type inputState uint8

const (
	stateIdle inputState = iota
	stateArmed
	stateListening
)

func (s inputState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateArmed:
		return "armed"
	case stateListening:
		return "listening"
	default:
		return "unknown"
	}
}

var lastWidgetID atomic.Uint64

type listenMsg struct {
	widget uint64
	gen    uint64
}

// field holds what Textarea and Textbox share: the buffer, the caret and the
// input state.
type field struct {
	cfg     Config
	widget  uint64
	value   buffer.Text
	caret   caret.Caret
	state   inputState
	gen     uint64
	focused bool
}

func newField(cfg Config) field {
	return field{
		cfg:    cfg.normalized(),
		widget: lastWidgetID.Add(1),
		value:  buffer.FromString(stripControls(cfg.Value)),
	}
}

// Reading reports whether a read is in progress.
func (f field) Reading() bool { return f.state != stateIdle }

// Listening reports whether keys are currently handled as input.
func (f field) Listening() bool { return f.state == stateListening }

// Caret returns the caret state.
func (f field) Caret() caret.Caret { return f.caret }

func (f *field) setState(s inputState) {
	if f.state == s {
		return
	}
	f.cfg.Logger.Debug("input state", "id", f.cfg.ID, "from", f.state.String(), "to", s.String())
	f.state = s
	f.gen++
}

func (f *field) arm() tea.Cmd {
	if f.state != stateIdle {
		return nil
	}
	f.setState(stateArmed)
	return msgCmd(listenMsg{widget: f.widget, gen: f.gen})
}

func (f *field) listen(msg listenMsg) {
	if msg.widget != f.widget || msg.gen != f.gen || f.state != stateArmed {
		return
	}
	f.setState(stateListening)
}

// finish ends the read and reports the value.
func (f *field) finish(canceled bool) tea.Cmd {
	if f.state == stateIdle {
		return nil
	}
	f.setState(stateIdle)
	return finishCmd(f.cfg.ID, f.value.String(), canceled)
}

// stop ends the read without reporting it.
func (f *field) stop() { f.setState(stateIdle) }

func (f *field) apply(h caret.Editable, ev caret.Event) tea.Cmd {
	before := f.value
	if err := f.caret.Apply(h, ev); err != nil {
		return f.fail(err)
	}
	if !before.Equal(f.value) {
		f.changed()
	}
	return nil
}

func (f *field) fail(err error) tea.Cmd {
	attrs := []any{"id", f.cfg.ID, "err", err, "linear", f.caret.Linear()}
	var corrupt *wrapped.CorruptStateError
	if errors.As(err, &corrupt) {
		attrs = append(attrs, "offset", corrupt.Offset, "rows", corrupt.Rows)
	}
	f.cfg.Logger.Error("caret operation failed", attrs...)
	return msgCmd(ErrorMsg{ID: f.cfg.ID, Err: err})
}

func (f *field) changed() {
	if f.cfg.OnChange == nil {
		return
	}
	f.cfg.OnChange(ChangeEvent{ID: f.cfg.ID, Value: f.value.String(), Caret: f.caret})
}

// editKey handles the bindings both widgets share while listening. It
// reports false when msg is not one of them.
func (f *field) editKey(h caret.Editable, msg tea.KeyMsg) (tea.Cmd, bool) {
	km := f.cfg.KeyMap

	// Pasted text is literal and never triggers bindings.
	if msg.Paste {
		if len(msg.Runes) == 0 {
			return nil, true
		}
		return f.apply(h, caret.Insert(buffer.FromString(normalizeExternal(string(msg.Runes))))), true
	}

	switch {
	case key.Matches(msg, km.Left):
		return f.apply(h, caret.Left()), true
	case key.Matches(msg, km.Right):
		return f.apply(h, caret.Right()), true
	case key.Matches(msg, km.Backspace):
		return f.apply(h, caret.Delete(0)), true
	case key.Matches(msg, km.Paste):
		return f.pasteClipboard(h), true
	}

	switch msg.Type {
	case tea.KeySpace:
		return f.apply(h, caret.Insert(buffer.FromString(" "))), true
	case tea.KeyRunes:
		if msg.Alt {
			return nil, false
		}
		typed := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if acceptRune(r) {
				typed = append(typed, r)
			}
		}
		if len(typed) == 0 {
			return nil, true
		}
		return f.apply(h, caret.Insert(buffer.FromString(string(typed)))), true
	}
	return nil, false
}

func (f *field) pasteClipboard(h caret.Editable) tea.Cmd {
	if f.cfg.Clipboard == nil {
		return nil
	}
	s, err := f.cfg.Clipboard.ReadText()
	if err != nil {
		f.cfg.Logger.Warn("clipboard read failed", "id", f.cfg.ID, "err", err)
		return msgCmd(ErrorMsg{ID: f.cfg.ID, Err: err})
	}
	if s == "" {
		return nil
	}
	return f.apply(h, caret.Insert(buffer.FromString(normalizeExternal(s))))
}

// acceptRune rejects C0 controls other than tab, newline and carriage
// return, and DEL.
func acceptRune(r rune) bool {
	switch {
	case r <= 0x08, r == 0x0b, r == 0x0c:
		return false
	case r >= 0x0e && r <= 0x1f, r == 0x7f:
		return false
	}
	return true
}

// stripControls drops the runes acceptRune rejects. buffer.Marker is one of
// them; a marker in the value would no longer match the reflowed rows.
func stripControls(s string) string {
	return strings.Map(func(r rune) rune {
		if acceptRune(r) {
			return r
		}
		return -1
	}, s)
}
