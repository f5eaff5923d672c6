package editor

// ScrollPolicy controls whether the Textarea viewport may move without the
// caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport. The caret's
	// relative row follows the new scroll base.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; the viewport only moves to
	// keep the caret visible.
	ScrollFollowCursorOnly
)
