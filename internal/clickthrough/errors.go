package clickthrough

import (
	"errors"
	"fmt"
)

// ErrShapeUnavailable is returned when the X server does not advertise the
// SHAPE extension. No shape request is issued in that case.
var ErrShapeUnavailable = errors.New("X SHAPE extension not available")

// ParseError reports a window identifier that is neither a decimal integer
// nor a 0x-prefixed hexadecimal integer.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid window id %q (expected decimal or hex with 0x prefix)", e.Text)
}
