package forth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWord is returned when a token is neither a number nor a
	// defined word.
	ErrUnknownWord = errors.New("unknown word")

	// ErrInvalidWord is returned for malformed : ... ; definitions: a missing
	// or numeric name, or a definition left open at the end of a line.
	ErrInvalidWord = errors.New("invalid word")

	// ErrStackUnderflow is returned when an operation needs more values than
	// the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrDivisionByZero is returned by / when its divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
)

// wordError annotates an error with the token or op that caused it.
type wordError struct {
	word string
	err  error
}

func (we wordError) Error() string {
	if we.word == "" {
		return we.err.Error()
	}
	return fmt.Sprintf("%v: %q", we.err, we.word)
}

func (we wordError) Unwrap() error { return we.err }

type lineError struct {
	line int
	err  error
}

func (le lineError) Error() string { return fmt.Sprintf("line %v: %v", le.line, le.err) }
func (le lineError) Unwrap() error { return le.err }
