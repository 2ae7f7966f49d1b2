package packet

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Mac describes the Message Authentication Code parameters negotiated for
// one direction of a connection.
type Mac interface {
	// Size is the MAC length in bytes appended to each frame; zero means
	// frames carry no MAC.
	Size() int

	// EncryptThenMac reports whether the MAC is computed over ciphertext
	// with a plaintext length field, rather than over the full plaintext
	// frame.
	EncryptThenMac() bool
}

// CipherCore is the part of a cipher shared by both directions: the frame
// geometry the codec needs before touching any bytes.
type CipherCore interface {
	// BlockSize is the cipher's block size in bytes. Stream ciphers
	// report their preferred alignment; the codec never aligns below 8.
	BlockSize() int

	Mac() Mac

	// Padding returns the padding length for a payload of payloadLen
	// compressed bytes. Implementations delegate to PaddingLength so both
	// directions frame identically.
	Padding(payloadLen int) int
}

// OpeningCipher is the receive direction: decrypt, authenticate and
// decompress one inbound frame. Implementations carry direction-scoped
// mutable state (keystream position, MAC state) and require a single
// in-flight read at a time.
type OpeningCipher interface {
	CipherCore

	// Decrypt decrypts buf in place.
	Decrypt(buf []byte) error

	// Open verifies mac over buf for the given sequence number using a
	// constant-time comparison. A mismatch fails with ErrMacMismatch and
	// is fatal to the connection.
	Open(buf, mac []byte, seq uint32) error

	// Decompress expands a decrypted payload.
	Decompress(payload []byte) ([]byte, error)
}

// SealingCipher is the send direction: compress, frame, encrypt and
// authenticate one outbound payload.
type SealingCipher interface {
	CipherCore

	// Compress compresses a payload prior to framing.
	Compress(payload []byte) ([]byte, error)

	// Pad builds the length-prefixed frame around payload, appending
	// paddingLen random bytes.
	Pad(payload []byte, paddingLen int) ([]byte, error)

	// Encrypt encrypts buf in place.
	Encrypt(buf []byte) error

	// Seal computes the MAC over buf for the given sequence number. The
	// returned slice is empty when Mac().Size() is zero.
	Seal(buf []byte, seq uint32) ([]byte, error)
}

// PaddingLength computes the padding size for a payload of payloadLen
// bytes under the RFC 4253 alignment rules. The aligned region includes
// the length field only when that field will itself be encrypted, so
// encrypt-then-MAC ciphers align over 1+payloadLen while the rest align
// over 4+1+payloadLen. At least 4 bytes of padding are emitted, and the
// frame is grown until it reaches the minimum of max(blockSize, 16).
func PaddingLength(blockSize int, etm bool, payloadLen int) int {
	align := blockSize
	if align < 8 {
		align = 8
	}
	header := 4 + 1
	if etm {
		header = 1
	}
	padding := (align - (header+payloadLen)%align) % align
	if padding < 4 {
		padding += align
	}
	minFrame := blockSize
	if minFrame < MinSize {
		minFrame = MinSize
	}
	if 4+1+payloadLen+padding < minFrame {
		padding += align
	}
	return padding
}

// BuildFrame assembles length ‖ padding_length ‖ payload ‖ padding, with
// the padding drawn from random. SealingCipher implementations use it as
// their Pad step.
func BuildFrame(payload []byte, paddingLen int, random io.Reader) ([]byte, error) {
	if paddingLen < 4 || paddingLen > 255 {
		return nil, fmt.Errorf("%w: padding %d outside [4,255]", ErrBadLength, paddingLen)
	}
	length := 1 + len(payload) + paddingLen
	if length > MaxSize {
		return nil, fmt.Errorf("%w: frame %d exceeds %d", ErrBadLength, length, MaxSize)
	}
	frame := make([]byte, 4+length)
	binary.BigEndian.PutUint32(frame[:4], uint32(length))
	frame[4] = byte(paddingLen)
	copy(frame[5:], payload)
	if _, err := io.ReadFull(random, frame[5+len(payload):]); err != nil {
		return nil, err
	}
	return frame, nil
}
