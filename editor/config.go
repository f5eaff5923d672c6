package editor

import (
	"log/slog"
	"os/exec"

	"github.com/iw2rmb/texty/wrapped"
)

// Config configures Textarea and Textbox.
//
// The zero value is usable: an unset KeyMap falls back to DefaultKeyMap and a
// nil Logger discards records. A zero Style renders plain text, including the
// cursor; hosts normally pass DefaultStyle.
type Config struct {
	// ID is copied into every message the widget sends.
	ID string

	// Value is the initial text.
	Value string

	// Width and Height are the initial size in cells. Textbox ignores Height.
	Width, Height int

	WrapMode wrapped.Mode

	// WideMode decodes surrogate pairs as single glyphs and measures East
	// Asian wide glyphs as two cells. When false every code unit is one cell.
	WideMode bool

	KeyMap KeyMap
	Style  Style

	// Keys enables the idle bindings: StartInput reads input and OpenEditor
	// launches the external editor.
	Keys bool
	// Vi adds "i" to StartInput.
	Vi bool
	// InputOnFocus starts reading input when the widget gains focus.
	InputOnFocus bool

	// Secret hides the Textbox value. Censor renders one '*' per glyph.
	Secret bool
	Censor bool

	Clipboard Clipboard
	OnChange  func(ChangeEvent)

	ScrollPolicy ScrollPolicy

	// EditorCmd builds the external editor command for a temp file path.
	// Nil resolves $VISUAL, then $EDITOR, then vim, nano and vi.
	EditorCmd func(path string) *exec.Cmd

	Logger *slog.Logger
}

func (c Config) normalized() Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	return c
}
