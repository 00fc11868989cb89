package zsh

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every grammar failure returned from Parse.
	ErrMalformed = errors.New("malformed history entry")

	// ErrInvalidUTF8 means the unmetafied command is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("command is not valid UTF-8")

	// ErrTrailingMeta means a metafied buffer ends in a lone Meta byte.
	// Well-formed history files never contain one.
	ErrTrailingMeta = errors.New("trailing meta byte")

	// ErrNegativeDuration means an entry finishes before it starts.
	ErrNegativeDuration = errors.New("finish time is before start time")
)

// ParseError describes why a logical line could not be parsed.
type ParseError struct {
	Line   []byte
	Offset int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse history entry at offset %d: %s: %q", e.Offset, e.Reason, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(line []byte, offset int, reason string) *ParseError {
	return &ParseError{Line: bytes.Clone(line), Offset: offset, Reason: reason, Err: ErrMalformed}
}
