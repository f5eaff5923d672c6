package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the widget key bindings.
//
// Navigation and editing bindings apply while listening. StartInput and
// OpenEditor apply while idle and only with Config.Keys.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Paste     key.Binding

	ExternalEditor key.Binding

	StartInput key.Binding
	ViInput    key.Binding
	OpenEditor key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline / submit")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ExternalEditor: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "external editor")),

		StartInput: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		ViInput:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit")),
		OpenEditor: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "external editor")),
	}
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.Backspace, km.Enter, km.Submit, km.Cancel, km.Paste,
		km.ExternalEditor,
		km.StartInput, km.ViInput, km.OpenEditor,
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
