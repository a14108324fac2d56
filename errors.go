package jsonh

import "fmt"

// Error is the error type every fallible JSONH operation returns. Position
// is the rune-index cursor position at which the error was detected.
type Error struct {
	Message  string
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Message, e.Position)
}

func newError(pos int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Position: pos}
}
