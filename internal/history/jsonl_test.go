package history

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

func TestDecode(t *testing.T) {
	input := ": 123:333;echo 123456\n: 1639322528:0;echo \\ \n: 1:0;a && b <c>\n"

	var out bytes.Buffer
	n, err := Decode(&out, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t,
		`{"start_time":123,"finish_time":456,"command":"echo 123456"}`+"\n"+
			`{"start_time":1639322528,"finish_time":1639322528,"command":"echo \\"}`+"\n"+
			`{"start_time":1,"finish_time":1,"command":"a && b <c>"}`+"\n",
		out.String())
}

func TestDecodeMalformed(t *testing.T) {
	var out bytes.Buffer
	n, err := Decode(&out, strings.NewReader(": 1:0;ok\n: abc:0;cmd\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, zsh.ErrMalformed)
	assert.Equal(t, 1, n)
}

func TestEncode(t *testing.T) {
	input := `{"start_time":123,"finish_time":456,"command":"echo 123456"}
{"command":"echo \\","finish_time":1639322528,"start_time":1639322528}  {"start_time":1,"finish_time":1,"command":"echo ペンギン"}
`

	var out bytes.Buffer
	n, err := Encode(&out, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := zsh.ReadAll(&out)
	require.NoError(t, err)
	assert.Equal(t, []zsh.Entry{
		{StartTime: 123, FinishTime: 456, Command: "echo 123456"},
		{StartTime: 1639322528, FinishTime: 1639322528, Command: "echo \\"},
		{StartTime: 1, FinishTime: 1, Command: "echo ペンギン"},
	}, entries)
}

func TestEncodeRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"finish before start", `{"start_time":10,"finish_time":9,"command":"x"}`, zsh.ErrNegativeDuration},
		{"negative time", `{"start_time":-1,"finish_time":9,"command":"x"}`, nil},
		{"not json", `: 1:0;ls`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Encode(&out, strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Contains(t, err.Error(), "entry 1")
			assert.Empty(t, out.String())
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	input := ": 1:0;echo \\\n1\\\n2\\   \n: 1111:0;echo one \\\\\n  echo two\n: 5:5;echo \xf0\x83\xbf\x83\xb0\xb2\n"

	var jsonl bytes.Buffer
	_, err := Decode(&jsonl, strings.NewReader(input))
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = Encode(&out, &jsonl)
	require.NoError(t, err)
	assert.Equal(t, input, out.String())
}

func TestJSONReaderEOF(t *testing.T) {
	r := NewJSONReader(strings.NewReader("  \n"))
	_, err := r.Read()
	assert.ErrorIs(t, err, io.EOF)
}
