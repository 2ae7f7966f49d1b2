package wire

import (
	"encoding/binary"
	"fmt"
)

// Bytes is an opaque buffer encoded as a `string`: a big-endian uint32
// length followed by exactly that many bytes.
type Bytes []byte

// Boolean is a single wire byte; any nonzero byte decodes as true,
// encoding always emits 0x00 or 0x01.
type Boolean bool

// AppendUint32 appends v big-endian to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// DecodeUint32 consumes a big-endian uint32 from the front of b.
func DecodeUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, fmt.Errorf("uint32: %w", ErrTruncated)
	}
	return binary.BigEndian.Uint32(b[:4]), b[4:], nil
}

// AppendUint8 appends a single byte to dst.
func AppendUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// DecodeUint8 consumes a single byte from the front of b.
func DecodeUint8(b []byte) (uint8, []byte, error) {
	if len(b) < 1 {
		return 0, nil, fmt.Errorf("uint8: %w", ErrTruncated)
	}
	return b[0], b[1:], nil
}

// AppendBytes appends the length-prefixed encoding of v to dst.
func AppendBytes(dst []byte, v Bytes) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(v)))
	return append(dst, v...)
}

// DecodeBytes consumes one length-prefixed string from the front of b and
// returns a copy of its payload with the unread remainder. Decoding fails
// when fewer bytes remain than the declared length requires.
func DecodeBytes(b []byte) (Bytes, []byte, error) {
	size, rest, err := DecodeUint32(b)
	if err != nil {
		return nil, nil, fmt.Errorf("bytes: %w", ErrTruncated)
	}
	if uint32(len(rest)) < size {
		return nil, nil, fmt.Errorf("bytes: declared %d, have %d: %w", size, len(rest), ErrTruncated)
	}
	payload := make(Bytes, size)
	copy(payload, rest[:size])
	return payload, rest[size:], nil
}

// AppendBoolean appends the one-byte encoding of v to dst.
func AppendBoolean(dst []byte, v Boolean) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// DecodeBoolean consumes one byte from the front of b.
func DecodeBoolean(b []byte) (Boolean, []byte, error) {
	if len(b) < 1 {
		return false, nil, fmt.Errorf("boolean: %w", ErrTruncated)
	}
	return b[0] != 0, b[1:], nil
}
