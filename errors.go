package timeshim

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch is matched by every grammar failure, see SyntaxError.
	ErrMismatch = errors.New("timeshim: no match")

	// ErrNoParse means the value is neither a date nor a time.
	ErrNoParse = fmt.Errorf("%w: not a valid date or time string", ErrMismatch)

	// ErrInvalidArgument and ErrIllegalState are raised, as panics, when a
	// Cursor is misused.
	ErrInvalidArgument = errors.New("timeshim: invalid argument")
	ErrIllegalState    = errors.New("timeshim: illegal state")
)

// SyntaxError describes where a component stopped matching the grammar.
type SyntaxError struct {
	Component string // "month", "date" or "time"
	Pos       int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("timeshim: invalid %s component at position %d: %s", e.Component, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMismatch
}

func mismatch(component string, c *Cursor, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Component: component, Pos: c.Position(), Msg: fmt.Sprintf(format, args...)}
}
