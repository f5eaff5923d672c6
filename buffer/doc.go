// Package buffer implements the flat, UTF-16 code-unit text model used by the
// caret engine.
//
// Offsets are 0-based indexes into a Text, measured in code units.
// Coordinates are 0-based (X, Y) pairs into wrapped display rows.
package buffer
