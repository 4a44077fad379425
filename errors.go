package membuf

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can check with errors.Is.
var (
	ErrInvalidArgument = errors.New("membuf: invalid argument")
	ErrIllegalState    = errors.New("membuf: illegal state")
	ErrBufferOverflow  = errors.New("membuf: buffer overflow")
	ErrBufferUnderflow = errors.New("membuf: buffer underflow")
	ErrReadOnly        = errors.New("membuf: target is read-only")
)

// OutOfBoundsError reports an index/length combination that would read or
// write outside [0, size). It carries enough context (index, need, size)
// to make off-by-one faults diagnosable at the call site.
type OutOfBoundsError struct {
	Index int
	Need  int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("membuf: index(%d) + length(%d) exceeds size(%d)", e.Index, e.Need, e.Size)
}

func outOfBounds(index, need, size int) error {
	return &OutOfBoundsError{Index: index, Need: need, Size: size}
}

// InvalidArgumentError reports a constructor or argument-level precondition
// failure: negative offsets/lengths, a nil backing array, address overflow,
// or a malformed aligned-varint padding run.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("membuf: invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(reason string) error {
	return &InvalidArgumentError{Reason: reason}
}

// IllegalStateError reports an operation attempted on a storage mode that
// does not support it (GetArray off-heap, GetAddress on-heap), or an
// operation against a buffer whose off-heap owner has already been closed.
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("membuf: illegal state: %s", e.Reason)
}

func (e *IllegalStateError) Unwrap() error { return ErrIllegalState }

func illegalState(reason string) error {
	return &IllegalStateError{Reason: reason}
}
