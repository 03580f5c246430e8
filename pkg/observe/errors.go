package observe

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index falls outside the sequence bounds.
	ErrOutOfRange = errors.New("observe: index out of range")

	// ErrEmpty is returned when removing from a sequence with no elements.
	ErrEmpty = errors.New("observe: sequence is empty")
)

// IndexError describes a rejected positional operation. It unwraps to
// ErrOutOfRange or ErrEmpty. The sequence is unchanged when it is returned.
type IndexError struct {
	Op    string
	Index int
	Len   int
	Err   error
}

func (e *IndexError) Error() string {
	if errors.Is(e.Err, ErrEmpty) {
		return fmt.Sprintf("observe: %s: sequence is empty", e.Op)
	}
	return fmt.Sprintf("observe: %s: index %d out of range with length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
