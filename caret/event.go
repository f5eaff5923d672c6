package caret

import (
	"fmt"

	"github.com/iw2rmb/texty/buffer"
)

// EventKind identifies what an Event asks the caret to do.
type EventKind uint8

const (
	EventLeft EventKind = iota
	EventRight
	EventUp
	EventDown
	EventInsert
	EventDelete
)

func (k EventKind) String() string {
	switch k {
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventInsert:
		return "insert"
	case EventDelete:
		return "delete"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is an immutable navigation or edit request produced by input
// handling.
//
// Len is the explicit length for EventLeft (0 means one glyph) and the number
// of code units for EventDelete. Text is the payload of EventInsert.
type Event struct {
	Kind EventKind
	Len  int
	Text buffer.Text
}

func Left() Event                { return Event{Kind: EventLeft} }
func Right() Event               { return Event{Kind: EventRight} }
func Up() Event                  { return Event{Kind: EventUp} }
func Down() Event                { return Event{Kind: EventDown} }
func Insert(t buffer.Text) Event { return Event{Kind: EventInsert, Text: t.Clone()} }
func Delete(n int) Event         { return Event{Kind: EventDelete, Len: n} }
