package navigation

import (
	"errors"
	"fmt"
)

// Navigation errors
var (
	// Parse errors

	ErrMalformedLine     = errors.New("malformed instruction line")
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidMagnitude  = errors.New("invalid magnitude")
	ErrNegativeMagnitude = errors.New("negative magnitude")

	// Input errors

	ErrInputUnavailable = errors.New("input unavailable")
)

// ParseError describes a line that could not be turned into an Instruction.
type ParseError struct {
	Line int // 1-based, 0 when parsing a single line
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
