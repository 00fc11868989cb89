package history

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/storage"
	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// ErrNoEntry is returned when a deletion names an entry the store does not
// hold.
var ErrNoEntry = errors.New("no such history entry")

// Store manages a zsh history file on disk. Entries are kept newest first.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	filePath string
	entries  []zsh.Entry
	backup   bool
}

// NewStore loads the history file at path. A missing file is an empty
// history. With backup set, Save copies the old file to path.bak first.
func NewStore(path string, backup bool) (*Store, error) {
	store := &Store{
		filePath: path,
		entries:  []zsh.Entry{},
		backup:   backup,
	}

	if err := store.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return store, nil
}

// Path returns the history file path.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads history from disk.
func (s *Store) Load() error {
	rc, err := storage.Open(s.filePath)
	if err != nil {
		return err
	}
	defer rc.Close()

	entries, err := zsh.ReadAll(rc)
	if err != nil {
		return err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime > entries[j].StartTime
	})

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Save writes history to disk atomically, oldest entry first.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

func (s *Store) save() error {
	if s.backup {
		if backupPath, err := storage.Backup(s.filePath); err != nil {
			logger.Error("backup of %s failed: %v", s.filePath, err)
		} else if backupPath != "" {
			logger.Info("backed up %s to %s", s.filePath, backupPath)
		}
	}

	timeline := NewTimeline()
	for _, entry := range s.entries {
		timeline.Add(entry)
	}

	var buf bytes.Buffer
	if _, err := timeline.WriteTo(&buf); err != nil {
		return err
	}

	return storage.WriteAtomic(s.filePath, buf.Bytes())
}

// List returns a copy of all entries, newest first.
func (s *Store) List() []zsh.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]zsh.Entry, len(s.entries))
	copy(list, s.entries)
	return list
}

// Get returns an entry by index into List.
func (s *Store) Get(idx int) (zsh.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx < 0 || idx >= len(s.entries) {
		return zsh.Entry{}, false
	}
	return s.entries[idx], true
}

// Delete removes an entry by index into List and saves to disk.
func (s *Store) Delete(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.entries) {
		return fmt.Errorf("%w: index %d of %d", ErrNoEntry, idx, len(s.entries))
	}
	return s.removeAt(idx)
}

// Remove deletes the newest entry equal to entry and saves to disk. Only one
// copy is removed when the file holds duplicates.
func (s *Store) Remove(entry zsh.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e == entry {
			return s.removeAt(i)
		}
	}
	return fmt.Errorf("%w: %q at %d", ErrNoEntry, entry.Command, entry.StartTime)
}

func (s *Store) removeAt(idx int) error {
	entries := make([]zsh.Entry, 0, len(s.entries)-1)
	entries = append(entries, s.entries[:idx]...)
	entries = append(entries, s.entries[idx+1:]...)

	previous := s.entries
	s.entries = entries
	if err := s.save(); err != nil {
		s.entries = previous
		return err
	}
	return nil
}
