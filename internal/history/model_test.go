package history

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

func TestTimelineOrdersByStartTime(t *testing.T) {
	timeline := NewTimeline()
	timeline.Add(zsh.Entry{StartTime: 30, FinishTime: 30, Command: "c"})
	timeline.Add(zsh.Entry{StartTime: 10, FinishTime: 10, Command: "a"})
	timeline.Add(zsh.Entry{StartTime: 20, FinishTime: 21, Command: "b"})
	timeline.Add(zsh.Entry{StartTime: 10, FinishTime: 12, Command: "a2"})

	assert.Equal(t, 4, timeline.Len())
	assert.Equal(t, []uint64{10, 20, 30}, timeline.Keys())
	assert.Equal(t, []zsh.Entry{
		{StartTime: 10, FinishTime: 10, Command: "a"},
		{StartTime: 10, FinishTime: 12, Command: "a2"},
	}, timeline.At(10))

	var commands []string
	for _, entry := range timeline.Entries() {
		commands = append(commands, entry.Command)
	}
	assert.Equal(t, []string{"a", "a2", "b", "c"}, commands)
}

func TestTimelineMergeTiesFollowArrivalOrder(t *testing.T) {
	fileA := ": 10:0;from a at 10\n: 30:0;from a at 30\n"
	fileB := ": 10:0;from b at 10\n: 20:0;from b at 20\n"

	timeline := NewTimeline()
	require.NoError(t, timeline.ReadFrom("a", strings.NewReader(fileA)))
	require.NoError(t, timeline.ReadFrom("b", strings.NewReader(fileB)))

	var buf bytes.Buffer
	n, err := timeline.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t,
		": 10:0;from a at 10\n"+
			": 10:0;from b at 10\n"+
			": 20:0;from b at 20\n"+
			": 30:0;from a at 30\n",
		buf.String())
}

func TestTimelineReadFromMalformed(t *testing.T) {
	timeline := NewTimeline()
	err := timeline.ReadFrom("broken", strings.NewReader(": 1:0;ok\n: abc:0;cmd\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, zsh.ErrMalformed)
	assert.Contains(t, err.Error(), "broken: line 2")
}

func TestTimelineDedupe(t *testing.T) {
	timeline := NewTimeline()
	for i := 0; i < 2; i++ {
		timeline.Add(zsh.Entry{StartTime: 10, FinishTime: 10, Command: "a"})
		timeline.Add(zsh.Entry{StartTime: 10, FinishTime: 11, Command: "b"})
		timeline.Add(zsh.Entry{StartTime: 20, FinishTime: 20, Command: "c"})
	}
	timeline.Add(zsh.Entry{StartTime: 20, FinishTime: 25, Command: "c"})

	assert.Equal(t, 3, timeline.Dedupe())
	assert.Equal(t, 4, timeline.Len())
	assert.Equal(t, []zsh.Entry{
		{StartTime: 10, FinishTime: 10, Command: "a"},
		{StartTime: 10, FinishTime: 11, Command: "b"},
		{StartTime: 20, FinishTime: 20, Command: "c"},
		{StartTime: 20, FinishTime: 25, Command: "c"},
	}, timeline.Entries())
}

func TestTimelineWriteToRejectsInvalidEntry(t *testing.T) {
	timeline := NewTimeline()
	timeline.Add(zsh.Entry{StartTime: 10, FinishTime: 5, Command: "bad"})

	var buf bytes.Buffer
	_, err := timeline.WriteTo(&buf)
	assert.ErrorIs(t, err, zsh.ErrNegativeDuration)
}
