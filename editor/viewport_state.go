package editor

import "github.com/iw2rmb/texty/wrapped"

// ViewportState is a host-facing snapshot of what a widget shows.
type ViewportState struct {
	// TopRow is the wrapped row rendered at screen row 0. It is the caret's
	// scroll base.
	TopRow int
	// VisibleRows is the number of rows available for content.
	VisibleRows int
	// TotalRows is the number of wrapped rows of the value.
	TotalRows int
	// LeftCell is the first visible cell column of a Textbox.
	LeftCell int
	WrapMode wrapped.Mode
}

func (m Textarea) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		TotalRows:   len(m.host().Lines()),
		WrapMode:    m.cfg.WrapMode,
	}
}

func (m Textbox) ViewportState() ViewportState {
	return ViewportState{
		VisibleRows: 1,
		TotalRows:   1,
		LeftCell:    m.xOffset,
		WrapMode:    m.cfg.WrapMode,
	}
}

func (m Textarea) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
