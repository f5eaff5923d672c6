package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports an offset outside [0, len] of the queried text.
var ErrOutOfBounds = errors.New("buffer: offset out of bounds")

func outOfBounds(at, n int) error {
	return fmt.Errorf("%w: offset %d, length %d", ErrOutOfBounds, at, n)
}
