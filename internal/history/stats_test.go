package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

func TestSummarize(t *testing.T) {
	entries := []zsh.Entry{
		{StartTime: 100, FinishTime: 101, Command: "git status"},
		{StartTime: 50, FinishTime: 50, Command: "ls -la"},
		{StartTime: 200, FinishTime: 260, Command: "FOO=1 git push"},
		{StartTime: 300, FinishTime: 300, Command: "git status"},
		{StartTime: 400, FinishTime: 402, Command: "for f in *; do\necho $f\ndone"},
	}

	stats := Summarize(entries, 2)
	assert.Equal(t, 5, stats.Entries)
	assert.Equal(t, 4, stats.UniqueCommands)
	assert.Equal(t, 1, stats.MultiLine)
	assert.Equal(t, time.Unix(50, 0).UTC(), stats.First)
	assert.Equal(t, time.Unix(400, 0).UTC(), stats.Last)
	assert.Equal(t, uint64(63), stats.TotalSeconds)
	assert.Equal(t, "FOO=1 git push", stats.Longest.Command)
	assert.Equal(t, []CommandCount{{Name: "git", Count: 3}, {Name: "for", Count: 1}}, stats.Top)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil, 10)
	assert.Zero(t, stats.Entries)
	assert.True(t, stats.First.IsZero())
	assert.Empty(t, stats.Top)
}

func TestProgram(t *testing.T) {
	assert.Equal(t, "git", Program("git status"))
	assert.Equal(t, "make", Program("  CC=clang CFLAGS=-O2 make all"))
	assert.Equal(t, "", Program("   "))
	assert.Equal(t, "=ls", Program("=ls"))
}
