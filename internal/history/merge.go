package history

import (
	"fmt"
	"io"

	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/storage"
	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// ReadFrom parses every logical line of r into t. name identifies r in
// errors. On error t may hold the entries read before the failing line.
func (t *Timeline) ReadFrom(name string, r io.Reader) error {
	lines := zsh.NewLines(r)
	for lines.Next() {
		entry, err := zsh.Parse(lines.Bytes())
		if err != nil {
			return fmt.Errorf("%s: line %d: %w", name, lines.Count(), err)
		}
		t.Add(entry)
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// WriteTo encodes every entry in time order.
func (t *Timeline) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, entry := range t.Entries() {
		b, err := entry.Bytes()
		if err != nil {
			return written, err
		}
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Opener opens a named history source for reading.
type Opener func(path string) (io.ReadCloser, error)

// MergeFiles reads the history files at paths, in order, into one timeline.
// The first unreadable or malformed file aborts the merge.
func MergeFiles(paths ...string) (*Timeline, error) {
	return Merge(storage.Open, paths...)
}

// Merge is MergeFiles with a custom way to open each path.
func Merge(open Opener, paths ...string) (*Timeline, error) {
	timeline := NewTimeline()
	for _, path := range paths {
		before := timeline.Len()
		if err := readSource(timeline, open, path); err != nil {
			return nil, err
		}
		logger.Debug("merged %d entries from %s", timeline.Len()-before, path)
	}
	return timeline, nil
}

func readSource(timeline *Timeline, open Opener, path string) error {
	rc, err := open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	return timeline.ReadFrom(path, rc)
}
