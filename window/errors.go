package window

import (
	"errors"
	"fmt"
)

// ErrNotSupported marks operations that have no analogue on this OS (custom
// cursors, cursor grab/positioning, window dragging, hit testing). Match
// with errors.Is.
var ErrNotSupported = errors.New("not supported")

// ErrUnavailable marks native handles that are currently invalid, e.g. the
// window handle while no surface exists. The operation may succeed later.
var ErrUnavailable = errors.New("unavailable")

func notSupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotSupported)
}

func unavailable(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnavailable)
}
