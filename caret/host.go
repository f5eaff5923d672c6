package caret

import (
	"github.com/iw2rmb/texty/buffer"
	"github.com/iw2rmb/texty/wrapped"
)

// Host is the widget a caret moves through.
type Host interface {
	// Value returns the current buffer.
	Value() buffer.Text
	// Lines returns the reflow of Value at Width. It must be recomputed
	// from the current value on every call.
	Lines() wrapped.Lines
	// Width is the display width the rows are wrapped at.
	Width() int
	// ScrollBase is the index of the first visible row.
	ScrollBase() int

	wrapped.Measurer
}

// Editable is a Host whose buffer the caret may replace.
type Editable interface {
	Host
	SetValue(t buffer.Text)
}
