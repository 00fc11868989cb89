package history

import (
	"sort"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// Timeline groups entries by start time. Entries that start in the same
// second keep the order in which they were added.
type Timeline struct {
	buckets map[uint64][]zsh.Entry
	keys    []uint64
	sorted  bool
	count   int
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		buckets: map[uint64][]zsh.Entry{},
		sorted:  true,
	}
}

// Add appends entry after every entry already stored with the same start
// time.
func (t *Timeline) Add(entry zsh.Entry) {
	bucket, ok := t.buckets[entry.StartTime]
	if !ok {
		t.keys = append(t.keys, entry.StartTime)
		if n := len(t.keys); n > 1 && t.keys[n-2] > entry.StartTime {
			t.sorted = false
		}
	}
	t.buckets[entry.StartTime] = append(bucket, entry)
	t.count++
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	return t.count
}

// Keys returns the distinct start times in ascending order.
func (t *Timeline) Keys() []uint64 {
	t.sortKeys()
	keys := make([]uint64, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// At returns the entries that start at key, in insertion order.
func (t *Timeline) At(key uint64) []zsh.Entry {
	return t.buckets[key]
}

// Entries returns every entry ordered by start time.
func (t *Timeline) Entries() []zsh.Entry {
	t.sortKeys()
	entries := make([]zsh.Entry, 0, t.count)
	for _, key := range t.keys {
		entries = append(entries, t.buckets[key]...)
	}
	return entries
}

// Dedupe drops entries equal to an earlier entry with the same start time and
// returns how many were dropped.
func (t *Timeline) Dedupe() int {
	dropped := 0
	for key, bucket := range t.buckets {
		kept := bucket[:0]
		for _, entry := range bucket {
			if containsEntry(kept, entry) {
				dropped++
				continue
			}
			kept = append(kept, entry)
		}
		t.buckets[key] = kept
	}
	t.count -= dropped
	return dropped
}

func containsEntry(entries []zsh.Entry, entry zsh.Entry) bool {
	for _, e := range entries {
		if e == entry {
			return true
		}
	}
	return false
}

func (t *Timeline) sortKeys() {
	if t.sorted {
		return
	}
	sort.Slice(t.keys, func(i, j int) bool {
		return t.keys[i] < t.keys[j]
	})
	t.sorted = true
}
