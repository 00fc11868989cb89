package zsh

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	headerPrefix = []byte(": ")
	continuation = []byte("\\\n")
)

// Entry is one command from an extended zsh history file.
type Entry struct {
	StartTime  uint64 `json:"start_time" yaml:"start_time"`
	FinishTime uint64 `json:"finish_time" yaml:"finish_time"`
	Command    string `json:"command" yaml:"command"`
}

// Duration returns the elapsed seconds stored on disk. It is zero when the
// entry is invalid; use Validate to detect that.
func (e Entry) Duration() uint64 {
	if e.FinishTime < e.StartTime {
		return 0
	}
	return e.FinishTime - e.StartTime
}

// Validate checks the invariants Bytes relies on.
func (e Entry) Validate() error {
	if e.FinishTime < e.StartTime {
		return fmt.Errorf("%w: start %d, finish %d", ErrNegativeDuration, e.StartTime, e.FinishTime)
	}
	if !utf8.ValidString(e.Command) {
		return ErrInvalidUTF8
	}
	return nil
}

// Parse decodes one logical line, including its final newline, in the form
//
//	: <start>:<duration>;<metafied command>\n
//
// Lines after the first must be joined by a backslash-newline, as produced by
// Lines.
func Parse(line []byte) (Entry, error) {
	if !bytes.HasPrefix(line, headerPrefix) {
		return Entry{}, malformed(line, 0, `missing ": " prefix`)
	}
	pos := len(headerPrefix)

	start, pos, err := parseUint(line, pos, ':')
	if err != nil {
		return Entry{}, err
	}
	duration, pos, err := parseUint(line, pos, ';')
	if err != nil {
		return Entry{}, err
	}
	if start+duration < start {
		return Entry{}, malformed(line, pos, "finish time overflows")
	}

	raw, err := parseCommand(line, pos)
	if err != nil {
		return Entry{}, err
	}

	command, err := Unmetafy(raw)
	if err != nil {
		return Entry{}, &ParseError{Line: bytes.Clone(line), Offset: pos, Reason: "cannot unmetafy command", Err: err}
	}
	if !utf8.Valid(command) {
		return Entry{}, &ParseError{Line: bytes.Clone(line), Offset: pos, Reason: "cannot decode command", Err: ErrInvalidUTF8}
	}

	return Entry{
		StartTime:  start,
		FinishTime: start + duration,
		Command:    string(command),
	}, nil
}

// parseUint reads a run of ASCII digits at pos followed by delim.
func parseUint(line []byte, pos int, delim byte) (uint64, int, error) {
	end := pos
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	if end == pos {
		return 0, pos, malformed(line, pos, "expected a decimal number")
	}
	value, err := strconv.ParseUint(string(line[pos:end]), 10, 64)
	if err != nil {
		return 0, pos, &ParseError{Line: bytes.Clone(line), Offset: pos, Reason: "number out of range", Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if end >= len(line) || line[end] != delim {
		return 0, end, malformed(line, end, fmt.Sprintf("expected %q", delim))
	}
	return value, end + 1, nil
}

// parseCommand joins the physical lines of a command body starting at pos.
// Every physical line but the last ends in a backslash-newline, which becomes
// a plain newline. The last one ends in a newline; if it ends in a backslash
// and one or more spaces, the first of those spaces is a terminator and is
// dropped.
func parseCommand(line []byte, pos int) ([]byte, error) {
	var buf []byte
	for {
		nl := bytes.IndexByte(line[pos:], '\n')
		if nl < 0 {
			return nil, malformed(line, len(line), "missing terminating newline")
		}
		end := pos + nl
		if nl > 0 && line[end-1] == '\\' {
			buf = append(buf, line[pos:end-1]...)
			buf = append(buf, '\n')
			pos = end + 1
			continue
		}

		last := line[pos:end]
		if end+1 != len(line) {
			return nil, malformed(line, end+1, "unexpected bytes after command")
		}
		if n := backslashedSpaces(last); n > 0 {
			last = last[:len(last)-1]
		}
		return append(buf, last...), nil
	}
}

// backslashedSpaces returns how many spaces follow the last backslash of b
// when nothing but spaces follows it, and 0 otherwise.
func backslashedSpaces(b []byte) int {
	i := len(b)
	for i > 0 && b[i-1] == ' ' {
		i--
	}
	if i == len(b) || i == 0 || b[i-1] != '\\' {
		return 0
	}
	return len(b) - i
}

// Bytes encodes e as it appears in a history file, including the final
// newline.
func (e Entry) Bytes() ([]byte, error) {
	if e.FinishTime < e.StartTime {
		return nil, fmt.Errorf("%w: start %d, finish %d", ErrNegativeDuration, e.StartTime, e.FinishTime)
	}

	command := Metafy([]byte(e.Command))
	buf := make([]byte, 0, len(command)+32)
	buf = append(buf, headerPrefix...)
	buf = strconv.AppendUint(buf, e.StartTime, 10)
	buf = append(buf, ':')
	buf = strconv.AppendUint(buf, e.FinishTime-e.StartTime, 10)
	buf = append(buf, ';')

	endBackslashed := false
	for _, c := range command {
		endBackslashed = c == '\\' || (endBackslashed && c == ' ')
		if c == '\n' {
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	if endBackslashed {
		buf = append(buf, ' ')
	}
	return append(buf, '\n'), nil
}

// MustBytes is like Bytes but panics if e finishes before it starts.
func (e Entry) MustBytes() []byte {
	b, err := e.Bytes()
	if err != nil {
		panic(err)
	}
	return b
}
