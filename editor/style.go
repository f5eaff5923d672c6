package editor

import "github.com/charmbracelet/lipgloss"

// Style controls widget rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	// Censor styles the mask glyphs of a censored Textbox.
	Censor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Censor: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
