package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/internal/grapheme"
	"github.com/iw2rmb/texty/wrapped"
)

// Textbox is a single-line Bubble Tea text widget.
//
// Newlines never enter the value. Enter submits. When the value is wider than
// the widget, a horizontal window of Width cells follows the caret.
type Textbox struct {
	field

	width   int
	xOffset int
}

// NewTextbox returns a Textbox with the caret at the end of cfg.Value.
func NewTextbox(cfg Config) Textbox {
	m := Textbox{field: newField(cfg), width: max(cfg.Width, 0)}
	m.value = stripNewlines(m.value)
	(&m).placeCaret(len(m.value))
	return m
}

// boxHost exposes a Textbox to the caret engine.
type boxHost struct{ m *Textbox }

func (h boxHost) Value() buffer.Text             { return h.m.value }
func (h boxHost) SetValue(t buffer.Text)         { h.m.value = stripNewlines(t) }
func (h boxHost) Width() int                     { return 0 }
func (h boxHost) ScrollBase() int                { return 0 }
func (h boxHost) WideMode() bool                 { return h.m.cfg.WideMode }
func (h boxHost) DisplayWidth(t buffer.Text) int { return grapheme.Width(t, h.m.cfg.WideMode) }

// Lines returns the value as one unwrapped row.
func (h boxHost) Lines() wrapped.Lines {
	return wrapped.Reflow(h.m.value, 0, h.m.cfg.WideMode, h.m.cfg.WrapMode)
}

func (m *Textbox) host() boxHost { return boxHost{m} }

func stripNewlines(t buffer.Text) buffer.Text {
	out := make(buffer.Text, 0, len(t))
	for _, u := range t {
		if u != buffer.Newline {
			out = append(out, u)
		}
	}
	return out
}

func (m Textbox) Init() tea.Cmd { return nil }

// Value returns the current text.
func (m Textbox) Value() string { return m.value.String() }

// SetValue replaces the text and moves the caret to its end. Newlines and
// control runes other than tab and carriage return are dropped.
func (m Textbox) SetValue(s string) Textbox {
	m.value = stripNewlines(buffer.FromString(stripControls(s)))
	m.placeCaret(len(m.value))
	m.changed()
	return m
}

// Clear empties the text.
func (m Textbox) Clear() Textbox { return m.SetValue("") }

// SetWidth sets the visible width in cells. Zero disables the window.
func (m Textbox) SetWidth(width int) Textbox {
	m.width = max(width, 0)
	m.scrollToCaret()
	return m
}

func (m Textbox) Width() int { return m.width }

// Focus gives the widget focus. With InputOnFocus it also starts reading.
func (m Textbox) Focus() (Textbox, tea.Cmd) {
	m.focused = true
	if m.cfg.InputOnFocus {
		return m.ReadInput()
	}
	return m, nil
}

// Blur removes focus. A read in progress finishes as canceled.
func (m Textbox) Blur() (Textbox, tea.Cmd) {
	m.focused = false
	cmd := m.finish(true)
	return m, cmd
}

func (m Textbox) Focused() bool { return m.focused }

// ReadInput starts reading keys. The returned command must be run for the
// widget to start listening.
func (m Textbox) ReadInput() (Textbox, tea.Cmd) {
	cmd := m.arm()
	return m, cmd
}

// ReadEditor opens the value in the external editor.
func (m Textbox) ReadEditor() (Textbox, tea.Cmd) {
	cmd := m.startEditor()
	return m, cmd
}

// Submit finishes the read with a SubmitMsg.
func (m Textbox) Submit() (Textbox, tea.Cmd) {
	cmd := m.finish(false)
	return m, cmd
}

// Cancel finishes the read with a CancelMsg.
func (m Textbox) Cancel() (Textbox, tea.Cmd) {
	cmd := m.finish(true)
	return m, cmd
}

func (m Textbox) Update(msg tea.Msg) (Textbox, tea.Cmd) {
	switch msg := msg.(type) {
	case listenMsg:
		m.listen(msg)
		return m, nil
	case editorFinishedMsg:
		if msg.widget != m.widget {
			return m, nil
		}
		return m.editorFinished(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Textbox) updateKey(msg tea.KeyMsg) (Textbox, tea.Cmd) {
	km := m.cfg.KeyMap

	if m.state == stateIdle {
		if !m.focused || !m.cfg.Keys {
			return m, nil
		}
		switch {
		case key.Matches(msg, km.StartInput), m.cfg.Vi && key.Matches(msg, km.ViInput):
			return m.ReadInput()
		case key.Matches(msg, km.OpenEditor):
			return m.ReadEditor()
		}
		return m, nil
	}
	if m.state != stateListening {
		return m, nil
	}

	h := m.host()
	var cmd tea.Cmd
	switch {
	case msg.Paste:
		cmd, _ = m.editKey(h, msg)
	case key.Matches(msg, km.Cancel):
		return m.Cancel()
	case key.Matches(msg, km.Enter), key.Matches(msg, km.Submit):
		return m.Submit()
	case m.cfg.Keys && key.Matches(msg, km.ExternalEditor):
		return m.ReadEditor()
	case key.Matches(msg, km.Up), key.Matches(msg, km.Down):
		return m, nil
	default:
		var ok bool
		if cmd, ok = m.editKey(h, msg); !ok {
			return m, nil
		}
	}
	m.scrollToCaret()
	return m, cmd
}

func (m Textbox) editorFinished(msg editorFinishedMsg) (Textbox, tea.Cmd) {
	s, cmd, ok := m.editorResult(msg)
	if !ok {
		return m, cmd
	}
	m.value = stripNewlines(buffer.FromString(s))
	cmd = m.placeCaret(m.caret.Linear())
	m.changed()
	cmd = tea.Batch(cmd, m.arm())
	return m, cmd
}

func (m *Textbox) placeCaret(off int) tea.Cmd {
	var cmd tea.Cmd
	if err := m.caret.SetLinear(m.host(), off); err != nil {
		cmd = m.fail(err)
	}
	m.scrollToCaret()
	return cmd
}

// scrollToCaret moves the horizontal window the least distance that keeps
// the caret column inside it.
func (m *Textbox) scrollToCaret() {
	if m.width <= 0 {
		m.xOffset = 0
		return
	}
	col := m.caretColumn()
	switch {
	case col < m.xOffset:
		m.xOffset = col
	case col >= m.xOffset+m.width:
		m.xOffset = col - m.width + 1
	}
}

func (m Textbox) caretColumn() int {
	if m.cfg.Secret {
		return 0
	}
	return columnOf(m.cells(), m.caret.Absolute().X)
}

func (m Textbox) cells() []glyphCell {
	cs := rowCells(m.host().Lines().Row(0), m.cfg.WideMode)
	if m.cfg.Censor {
		cs = censorCells(cs)
	}
	return cs
}

func (m Textbox) View() string {
	show := m.state == stateListening
	if m.cfg.Secret {
		if show {
			return m.cfg.Style.Cursor.Render(" ")
		}
		return ""
	}

	cursor := -1
	if show {
		cursor = m.caret.Absolute().X
	}
	var text func(string) string
	if m.cfg.Censor {
		text = func(s string) string { return m.cfg.Style.Censor.Render(s) }
	}
	return renderCells(m.cfg.Style, text, visibleCells(m.cells(), m.xOffset, m.width), cursor)
}

// visibleCells returns the glyphs that fit entirely inside the window of
// width cells starting at cell left. A width <= 0 keeps every glyph.
func visibleCells(cs []glyphCell, left, width int) []glyphCell {
	if width <= 0 {
		return cs
	}
	out := make([]glyphCell, 0, len(cs))
	col := 0
	for _, c := range cs {
		if col >= left && col+c.cells <= left+width {
			out = append(out, c)
		}
		col += c.cells
	}
	return out
}
