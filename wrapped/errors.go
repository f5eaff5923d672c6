package wrapped

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/texty/buffer"
)

// ErrCorruptState reports rows that are inconsistent with the buffer they
// were supposedly reflowed from.
var ErrCorruptState = errors.New("wrapped: rows out of sync with buffer")

// CorruptStateError carries the context of a failed coordinate walk.
type CorruptStateError struct {
	Offset int          // requested offset
	Last   buffer.Coord // last coordinate reached by the walk
	Rows   int          // number of rows walked
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("%v: offset %d, last coord (%d,%d), rows %d",
		ErrCorruptState, e.Offset, e.Last.X, e.Last.Y, e.Rows)
}

func (e *CorruptStateError) Unwrap() error { return ErrCorruptState }

func outOfBounds(what string, v, n int) error {
	return fmt.Errorf("%w: %s %d, length %d", buffer.ErrOutOfBounds, what, v, n)
}
