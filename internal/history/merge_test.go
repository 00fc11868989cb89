package history

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

func writeHistory(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeHistory(t, dir, "a", ": 10:1;echo a\\\nb\n: 30:0;ls\n")
	b := writeHistory(t, dir, "b", ": 10:0;pwd\n: 20:2;echo \\ \n")

	timeline, err := MergeFiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, []zsh.Entry{
		{StartTime: 10, FinishTime: 11, Command: "echo a\nb"},
		{StartTime: 10, FinishTime: 10, Command: "pwd"},
		{StartTime: 20, FinishTime: 22, Command: "echo \\"},
		{StartTime: 30, FinishTime: 30, Command: "ls"},
	}, timeline.Entries())
}

func TestMergeFilesAbortsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	good := writeHistory(t, dir, "good", ": 10:0;ls\n")
	bad := writeHistory(t, dir, "bad", ": 10:0;ls\n: nope\n")

	_, err := MergeFiles(good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, zsh.ErrMalformed)
	assert.Contains(t, err.Error(), bad)

	_, err = MergeFiles(good, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeFilesEmpty(t *testing.T) {
	timeline, err := MergeFiles(writeHistory(t, t.TempDir(), "empty", ""))
	require.NoError(t, err)
	assert.Zero(t, timeline.Len())
	assert.Empty(t, timeline.Entries())
}

func TestMergeWithOpener(t *testing.T) {
	sources := map[string]string{
		"a": ": 10:0;a1\n: 30:0;a3\n",
		"b": ": 10:0;b1\n: 20:0;b2\n",
	}
	var opened []string
	open := func(path string) (io.ReadCloser, error) {
		opened = append(opened, path)
		return io.NopCloser(strings.NewReader(sources[path])), nil
	}

	timeline, err := Merge(open, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, opened)

	var commands []string
	for _, entry := range timeline.Entries() {
		commands = append(commands, entry.Command)
	}
	assert.Equal(t, []string{"a1", "b1", "b2", "a3"}, commands)
}
