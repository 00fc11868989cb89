package zsh

import "fmt"

// Byte values zsh reserves for its own tokenizer. A history file stores any of
// them as Meta followed by the byte XORed with metaMask.
const (
	Meta   byte = 0x83
	Marker byte = 0xa2

	pound         byte = 0x84
	lastNormalTok byte = 0x9c
	snull         byte = 0x9d
	nularg        byte = 0xa1

	metaMask byte = 0x20
)

// metaTable marks the bytes that must be escaped. It is filled once in init
// and only read afterwards.
var metaTable [256]bool

func init() {
	metaTable[0] = true
	metaTable[Meta] = true
	metaTable[Marker] = true
	for c := int(pound); c <= int(lastNormalTok); c++ {
		metaTable[c] = true
	}
	for c := int(snull); c <= int(nularg); c++ {
		metaTable[c] = true
	}
}

// IsMeta reports whether c is escaped by Metafy.
func IsMeta(c byte) bool {
	return metaTable[c]
}

// MetaChars returns the escaped byte values in ascending order.
func MetaChars() []byte {
	chars := make([]byte, 0, 3+int(lastNormalTok-pound)+1+int(nularg-snull)+1)
	for c := 0; c < len(metaTable); c++ {
		if metaTable[c] {
			chars = append(chars, byte(c))
		}
	}
	return chars
}

// Metafy escapes src the way zsh does before writing it to a history file.
func Metafy(src []byte) []byte {
	n := len(src)
	for _, c := range src {
		if metaTable[c] {
			n++
		}
	}

	buf := make([]byte, 0, n)
	for _, c := range src {
		if !metaTable[c] {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, Meta, c^metaMask)
	}
	return buf
}

// Unmetafy reverses Metafy. A Meta byte at the very end of src cannot come
// from Metafy and is reported as a *MetaError.
func Unmetafy(src []byte) ([]byte, error) {
	buf := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != Meta {
			buf = append(buf, c)
			continue
		}
		if i+1 >= len(src) {
			return nil, &MetaError{Offset: i}
		}
		i++
		buf = append(buf, src[i]^metaMask)
	}
	return buf, nil
}

// MetaError is returned by Unmetafy for a Meta byte without a following byte.
type MetaError struct {
	Offset int
}

func (e *MetaError) Error() string {
	return fmt.Sprintf("meta byte 0x%02x at offset %d has no following byte", Meta, e.Offset)
}

func (e *MetaError) Unwrap() error {
	return ErrTrailingMeta
}
