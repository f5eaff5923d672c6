// Package caret tracks an insertion point in a text buffer across its three
// coordinate spaces: the linear code-unit offset, the absolute (column, row)
// position in the wrapped rows, and the relative position on screen.
//
// The caret never owns the buffer or the rows. Every operation receives a
// Host and reads a fresh snapshot from it, so edits made between calls are
// always observed.
package caret
