package awd

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a read extends past the end of the buffer.
	ErrOutOfBounds = errors.New("read past end of buffer")

	// ErrLengthMismatch is returned when a structure's contents disagree with
	// its declared byte length.
	ErrLengthMismatch = errors.New("declared length mismatch")

	// ErrTruncated is returned when a block extends past the end of the file.
	ErrTruncated = errors.New("truncated block")
)

// DecodeError locates a structural failure in the file.
type DecodeError struct {
	Offset int    // absolute file offset where the failing read started
	What   string // structure being decoded, e.g. "property table"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("awd: %s at offset %d (%#x): %v", e.What, e.Offset, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
