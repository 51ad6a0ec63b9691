package clickthrough

import (
	"fmt"
	"strconv"
	"strings"
)

// WindowID is an X11 window handle (a 32-bit XID).
type WindowID uint32

// String renders the handle in hexadecimal, the way X tools print it.
func (id WindowID) String() string {
	return fmt.Sprintf("0x%x", uint32(id))
}

// ParseWindowID parses a window identifier written either as a base-10
// integer or as a base-16 integer with a 0x/0X prefix. Anything else,
// including values wider than 32 bits, is a *ParseError.
func ParseWindowID(text string) (WindowID, error) {
	digits := text
	base := 10
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		digits = text[2:]
		base = 16
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, &ParseError{Text: text}
	}
	return WindowID(v), nil
}
