package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		Close()
		_ = SetLevel("info")
	})

	require.NoError(t, SetLevel("warn"))
	Info("hidden %d", 1)
	Warn("shown %d", 2)
	Error("failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="shown 2"`)
	assert.Contains(t, out, `msg="failed: boom"`)

	require.NoError(t, SetLevel("DEBUG"))
	Debug("details")
	assert.Contains(t, buf.String(), "msg=details")

	assert.Error(t, SetLevel("verbose"))
}
