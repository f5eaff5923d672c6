// Package editor provides Bubble Tea text widgets driven by the caret
// engine.
//
// Textarea is a multi-line widget with soft wrapping and vertical scrolling.
// Textbox is a single-line widget with a horizontal cell window. Both read
// input through an explicit state machine (idle, armed, listening), can hand
// their value to an external editor, and report results as tea messages.
package editor
