// Package wrapped maps between linear buffer offsets and coordinates in the
// wrapped display rows of that buffer.
//
// Rows are produced by Reflow (or any reflow that follows the same contract):
// newline separators are stripped and, in wide mode, every double-width
// glyph is followed by buffer.Marker. All other code units of the buffer
// appear in the rows exactly once and in order. A buffer must never contain
// buffer.Marker itself.
package wrapped
