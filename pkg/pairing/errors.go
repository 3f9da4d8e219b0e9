package pairing

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeInput indicates an argument outside the non-negative domain.
	// The Cantor pairing function is undefined for negative integers.
	ErrNegativeInput = errors.New("pairing: negative input")

	// ErrNilInput indicates a nil *big.Int argument.
	ErrNilInput = errors.New("pairing: nil input")

	// ErrOutOfRange indicates the fixed-width codec cannot represent the
	// result without overflow. The arbitrary-precision codec has no such limit.
	ErrOutOfRange = errors.New("pairing: value out of uint64 range")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pairing.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error. The format must wrap a sentinel with %w so
// callers can match with errors.Is.
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
