package zsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metaCases = []struct {
	name       string
	metafied   []byte
	unmetafied []byte
}{
	{
		name:       "simple",
		metafied:   []byte("echo 123"),
		unmetafied: []byte("echo 123"),
	},
	{
		name:       "dragon",
		metafied:   []byte{240, 131, 191, 131, 176, 178},
		unmetafied: []byte("🐲"),
	},
	{
		name: "family",
		metafied: []byte{
			240, 131, 191, 131,
			177, 168, 226, 128,
			131, 173, 240, 131,
			191, 131, 177, 168,
			226, 128, 131, 173,
			240, 131, 191, 131,
			177, 167, 226, 128,
			131, 173, 240, 131,
			191, 131, 177, 166,
		},
		unmetafied: []byte("👨‍👨‍👧‍👦"),
	},
	{
		name:       "null byte",
		metafied:   []byte{'a', Meta, 0x20, 'b'},
		unmetafied: []byte{'a', 0x00, 'b'},
	},
}

func TestMetafy(t *testing.T) {
	for _, tc := range metaCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.metafied, Metafy(tc.unmetafied))
		})
	}
}

func TestUnmetafy(t *testing.T) {
	for _, tc := range metaCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Unmetafy(tc.metafied)
			require.NoError(t, err)
			assert.Equal(t, tc.unmetafied, got)
		})
	}
}

func TestMetaChars(t *testing.T) {
	chars := MetaChars()
	require.Len(t, chars, 33)
	assert.Equal(t, byte(0x00), chars[0])
	assert.Equal(t, Meta, chars[1])
	assert.Equal(t, byte(0x84), chars[2])
	assert.Equal(t, Marker, chars[len(chars)-1])

	for c := 0; c < 256; c++ {
		want := c == 0 || c == int(Meta) || c == int(Marker) || (c >= 0x84 && c <= 0xa1)
		assert.Equal(t, want, IsMeta(byte(c)), "byte 0x%02x", c)
	}
}

func TestMetafyRoundTripAllBytes(t *testing.T) {
	all := make([]byte, 0, 512)
	for c := 0; c < 256; c++ {
		all = append(all, byte(c), byte(255-c))
	}

	metafied := Metafy(all)
	assert.Len(t, metafied, len(all)+2*33)
	for i := 0; i < len(metafied); i++ {
		if metafied[i] == Meta {
			i++
			continue
		}
		assert.False(t, IsMeta(metafied[i]), "unescaped meta byte at %d", i)
	}

	got, err := Unmetafy(metafied)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestUnmetafyTrailingMeta(t *testing.T) {
	_, err := Unmetafy([]byte{'e', 'c', Meta})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTrailingMeta)

	var metaErr *MetaError
	require.ErrorAs(t, err, &metaErr)
	assert.Equal(t, 2, metaErr.Offset)
}
