package wire

import (
	"fmt"
	"unicode/utf8"
)

// Utf8String is a `string` restricted to valid UTF-8.
type Utf8String string

// AsciiString is a `string` restricted to valid ASCII. The ASCII check is
// applied on top of UTF-8 validity, not instead of it.
type AsciiString string

// NewUtf8String validates raw bytes as UTF-8. Construction from an
// already-owned Go string goes through a plain conversion instead, since
// the text is known-valid at that point.
func NewUtf8String(raw []byte) (Utf8String, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("utf8 string: %w", ErrNotUTF8)
	}
	return Utf8String(raw), nil
}

// NewAsciiString validates raw bytes as ASCII-only UTF-8.
func NewAsciiString(raw []byte) (AsciiString, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("ascii string: %w", ErrNotUTF8)
	}
	if !isASCII(raw) {
		return "", fmt.Errorf("ascii string: %w", ErrNotASCII)
	}
	return AsciiString(raw), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// AppendUtf8 appends the length-prefixed encoding of v to dst.
func AppendUtf8(dst []byte, v Utf8String) []byte {
	return AppendBytes(dst, Bytes(v))
}

// DecodeUtf8 consumes one string from the front of b and validates it
// as UTF-8.
func DecodeUtf8(b []byte) (Utf8String, []byte, error) {
	payload, rest, err := DecodeBytes(b)
	if err != nil {
		return "", nil, err
	}
	s, err := NewUtf8String(payload)
	if err != nil {
		return "", nil, err
	}
	return s, rest, nil
}

// AppendAscii appends the length-prefixed encoding of v to dst.
func AppendAscii(dst []byte, v AsciiString) []byte {
	return AppendBytes(dst, Bytes(v))
}

// DecodeAscii consumes one string from the front of b and validates it
// as ASCII.
func DecodeAscii(b []byte) (AsciiString, []byte, error) {
	payload, rest, err := DecodeBytes(b)
	if err != nil {
		return "", nil, err
	}
	s, err := NewAsciiString(payload)
	if err != nil {
		return "", nil, err
	}
	return s, rest, nil
}
