// Package texty is the root of a caret coordinate engine and the Bubble Tea
// text widgets built on it.
//
// The buffer package holds UTF-16 text, wrapped maps linear offsets to
// wrapped-row coordinates, caret keeps the three caret positions consistent
// across moves and edits, and editor provides the Textarea and Textbox
// widgets.
package texty
