package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// JSONWriter writes entries as JSON Lines.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter returns a JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

// Write writes entry followed by a newline.
func (w *JSONWriter) Write(entry zsh.Entry) error {
	return w.enc.Encode(entry)
}

// JSONReader reads a stream of JSON entries. Objects may be separated by any
// whitespace, not only newlines.
type JSONReader struct {
	dec   *json.Decoder
	count int
}

// NewJSONReader returns a JSONReader reading from r.
func NewJSONReader(r io.Reader) *JSONReader {
	return &JSONReader{dec: json.NewDecoder(r)}
}

// Read returns the next entry, or io.EOF when the stream is exhausted.
// Entries that cannot be encoded as history lines are rejected.
func (r *JSONReader) Read() (zsh.Entry, error) {
	var entry zsh.Entry
	if err := r.dec.Decode(&entry); err != nil {
		if errors.Is(err, io.EOF) {
			return zsh.Entry{}, io.EOF
		}
		return zsh.Entry{}, fmt.Errorf("entry %d: %w", r.count+1, err)
	}
	r.count++

	if err := entry.Validate(); err != nil {
		return zsh.Entry{}, fmt.Errorf("entry %d: %w", r.count, err)
	}
	return entry, nil
}

// Decode converts a history file into JSON Lines.
func Decode(dst io.Writer, src io.Reader) (int, error) {
	w := NewJSONWriter(dst)
	lines := zsh.NewLines(src)
	for lines.Next() {
		entry, err := zsh.Parse(lines.Bytes())
		if err != nil {
			return lines.Count() - 1, fmt.Errorf("line %d: %w", lines.Count(), err)
		}
		if err := w.Write(entry); err != nil {
			return lines.Count() - 1, err
		}
	}
	if err := lines.Err(); err != nil {
		return lines.Count(), err
	}
	return lines.Count(), nil
}

// Encode converts JSON entries into a history file.
func Encode(dst io.Writer, src io.Reader) (int, error) {
	r := NewJSONReader(src)
	n := 0
	for {
		entry, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		b, err := entry.Bytes()
		if err != nil {
			return n, err
		}
		if _, err := dst.Write(b); err != nil {
			return n, err
		}
		n++
	}
}
