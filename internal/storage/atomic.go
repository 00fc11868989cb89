package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the path that names standard input.
const StdinPath = "-"

// Open opens path for reading. StdinPath returns standard input, which the
// caller may close without closing the real stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// WriteAtomic writes data to a file atomically by writing to a temporary file
// and then renaming it to the target path. An existing target keeps its
// permissions; a new one is created with mode 0600.
func WriteAtomic(path string, data []byte) error {
	mode := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".zsh-history-utils-temp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tempFile.Chmod(mode); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Backup creates a backup copy of the file at path by appending .bak to the
// name. It returns the backup path, or "" if there was nothing to back up.
func Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil // Nothing to backup
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat file for backup: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file for backup: %w", err)
	}

	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return backupPath, nil
}
