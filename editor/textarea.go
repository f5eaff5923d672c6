package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/caret"
	"github.com/iw2rmb/texty/internal/grapheme"
	"github.com/iw2rmb/texty/wrapped"
)

// Textarea is a multi-line Bubble Tea text widget.
//
// The value is soft-wrapped at the widget width. The viewport's YOffset is
// the caret's scroll base and follows the caret after every move or edit.
type Textarea struct {
	field

	viewport viewport.Model
}

// NewTextarea returns a Textarea with the caret at the end of cfg.Value.
func NewTextarea(cfg Config) Textarea {
	m := Textarea{
		field:    newField(cfg),
		viewport: viewport.New(max(cfg.Width, 0), max(cfg.Height, 0)),
	}
	if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
		m.viewport.MouseWheelEnabled = false
	}
	(&m).placeCaret(len(m.value))
	return m
}

// areaHost exposes a Textarea to the caret engine.
type areaHost struct{ m *Textarea }

func (h areaHost) Value() buffer.Text             { return h.m.value }
func (h areaHost) SetValue(t buffer.Text)         { h.m.value = t }
func (h areaHost) Width() int                     { return h.m.viewport.Width }
func (h areaHost) ScrollBase() int                { return h.m.viewport.YOffset }
func (h areaHost) WideMode() bool                 { return h.m.cfg.WideMode }
func (h areaHost) DisplayWidth(t buffer.Text) int { return grapheme.Width(t, h.m.cfg.WideMode) }

func (h areaHost) Lines() wrapped.Lines {
	return wrapped.Reflow(h.m.value, h.m.viewport.Width, h.m.cfg.WideMode, h.m.cfg.WrapMode)
}

func (m *Textarea) host() areaHost { return areaHost{m} }

func (m Textarea) Init() tea.Cmd { return nil }

// Value returns the current text.
func (m Textarea) Value() string { return m.value.String() }

// SetValue replaces the text and moves the caret to its end. Control runes
// other than tab, newline and carriage return are dropped.
func (m Textarea) SetValue(s string) Textarea {
	m.value = buffer.FromString(stripControls(s))
	m.placeCaret(len(m.value))
	m.changed()
	return m
}

// Clear empties the text.
func (m Textarea) Clear() Textarea { return m.SetValue("") }

func (m Textarea) SetSize(width, height int) Textarea {
	m.resize(width, height)
	return m
}

func (m *Textarea) resize(width, height int) tea.Cmd {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	return m.placeCaret(m.caret.Linear())
}

// SetWrapMode rewraps the value. The caret keeps its linear offset.
func (m Textarea) SetWrapMode(mode wrapped.Mode) Textarea {
	m.cfg.WrapMode = mode
	m.placeCaret(m.caret.Linear())
	return m
}

func (m Textarea) WrapMode() wrapped.Mode { return m.cfg.WrapMode }

func (m Textarea) Width() int  { return m.viewport.Width }
func (m Textarea) Height() int { return m.viewport.Height }

// Focus gives the widget focus. With InputOnFocus it also starts reading.
func (m Textarea) Focus() (Textarea, tea.Cmd) {
	m.focused = true
	if m.cfg.InputOnFocus {
		return m.ReadInput()
	}
	return m, nil
}

// Blur removes focus. A read in progress finishes as canceled.
func (m Textarea) Blur() (Textarea, tea.Cmd) {
	m.focused = false
	cmd := m.finish(true)
	m.rebuildContent()
	return m, cmd
}

func (m Textarea) Focused() bool { return m.focused }

// ReadInput starts reading keys. The returned command must be run for the
// widget to start listening.
func (m Textarea) ReadInput() (Textarea, tea.Cmd) {
	cmd := m.arm()
	return m, cmd
}

// ReadEditor opens the value in the external editor.
func (m Textarea) ReadEditor() (Textarea, tea.Cmd) {
	cmd := m.startEditor()
	m.rebuildContent()
	return m, cmd
}

// Submit finishes the read with a SubmitMsg.
func (m Textarea) Submit() (Textarea, tea.Cmd) {
	cmd := m.finish(false)
	m.rebuildContent()
	return m, cmd
}

// Cancel finishes the read with a CancelMsg.
func (m Textarea) Cancel() (Textarea, tea.Cmd) {
	cmd := m.finish(true)
	m.rebuildContent()
	return m, cmd
}

func (m Textarea) Update(msg tea.Msg) (Textarea, tea.Cmd) {
	switch msg := msg.(type) {
	case listenMsg:
		m.listen(msg)
		m.rebuildContent()
		return m, nil
	case editorFinishedMsg:
		if msg.widget != m.widget {
			return m, nil
		}
		return m.editorFinished(msg)
	case tea.WindowSizeMsg:
		cmd := m.resize(msg.Width, msg.Height)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Textarea) View() string { return m.viewport.View() }

func (m Textarea) updateKey(msg tea.KeyMsg) (Textarea, tea.Cmd) {
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
	case key.Matches(msg, km.Submit):
		return m.Submit()
	case m.cfg.Keys && key.Matches(msg, km.ExternalEditor):
		return m.ReadEditor()
	case key.Matches(msg, km.Up):
		cmd = m.apply(h, caret.Up())
	case key.Matches(msg, km.Down):
		cmd = m.apply(h, caret.Down())
	case key.Matches(msg, km.Enter):
		cmd = m.apply(h, caret.Insert(buffer.Text{buffer.Newline}))
	default:
		var ok bool
		if cmd, ok = m.editKey(h, msg); !ok {
			return m, nil
		}
	}
	cmd = tea.Batch(cmd, m.followCaret())
	return m, cmd
}

func (m Textarea) editorFinished(msg editorFinishedMsg) (Textarea, tea.Cmd) {
	s, cmd, ok := m.editorResult(msg)
	if !ok {
		m.rebuildContent()
		return m, cmd
	}
	m.value = buffer.FromString(s)
	cmd = m.placeCaret(m.caret.Linear())
	m.changed()
	cmd = tea.Batch(cmd, m.arm())
	return m, cmd
}

// placeCaret settles the caret at off after the rows changed and brings it
// into view. Setters without a command still get the failure logged.
func (m *Textarea) placeCaret(off int) tea.Cmd {
	if err := m.caret.SetLinear(m.host(), off); err != nil {
		return tea.Batch(m.fail(err), m.followCaret())
	}
	return m.followCaret()
}

// followCaret scrolls the viewport so the caret row is visible and refreshes
// the caret's relative position.
func (m *Textarea) followCaret() tea.Cmd {
	m.rebuildContent()

	h := m.visibleRowCount()
	if h > 0 {
		row := m.caret.Absolute().Y
		y := m.viewport.YOffset
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}
	if err := m.caret.Rescroll(m.host()); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Textarea) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Textarea) renderContent() string {
	lines := m.host().Lines()
	abs := m.caret.Absolute()
	show := m.state == stateListening

	out := make([]string, len(lines))
	for y, row := range lines {
		cursor := -1
		if show && y == abs.Y {
			cursor = abs.X
		}
		out[y] = renderCells(m.cfg.Style, nil, rowCells(row, m.cfg.WideMode), cursor)
	}
	return strings.Join(out, "\n")
}
