package zsh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Lines splits a history file into logical lines. A logical line runs until
// a newline that is not preceded by a backslash, so a multi-line command is
// returned as a single line with its continuation markers left in place.
//
// Use it like a bufio.Scanner:
//
//	lines := zsh.NewLines(r)
//	for lines.Next() {
//		entry, err := zsh.Parse(lines.Bytes())
//		...
//	}
//	if err := lines.Err(); err != nil {
//		...
//	}
type Lines struct {
	r     *bufio.Reader
	line  []byte
	count int
	err   error
	done  bool
}

// NewLines returns a Lines reading from r.
func NewLines(r io.Reader) *Lines {
	return &Lines{r: bufio.NewReader(r)}
}

// Next advances to the next logical line. It returns false at the end of the
// input or on a read error.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}

	l.line = l.line[:0]
	for {
		physical, err := l.r.ReadSlice('\n')
		l.line = append(l.line, physical...)

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			l.done = true
			if err != io.EOF {
				l.err = fmt.Errorf("read logical line %d: %w", l.count+1, err)
				return false
			}
			if len(l.line) == 0 {
				return false
			}
			l.count++
			return true
		}

		if bytes.HasSuffix(l.line, continuation) {
			continue
		}
		l.count++
		return true
	}
}

// Bytes returns the current logical line. The slice is reused by the next
// call to Next.
func (l *Lines) Bytes() []byte {
	return l.line
}

// Count returns the number of logical lines returned so far.
func (l *Lines) Count() int {
	return l.count
}

// Err returns the first read error other than io.EOF.
func (l *Lines) Err() error {
	return l.err
}

// ReadAll parses every logical line of r.
func ReadAll(r io.Reader) ([]Entry, error) {
	var entries []Entry
	lines := NewLines(r)
	for lines.Next() {
		entry, err := Parse(lines.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lines.Count(), err)
		}
		entries = append(entries, entry)
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
