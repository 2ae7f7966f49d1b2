package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// MaxSize caps the declared packet_length field. Frames advertising
	// more are rejected before any buffer of that size is allocated,
	// bounding memory exposure to a hostile peer.
	MaxSize = 65535

	// MinSize is the smallest on-wire frame, the largest common block
	// size. RFC 4253 section 6.
	MinSize = 16
)

// Packet is one logical SSH message: the decrypted, decompressed payload
// decoupled from its on-wire framing. Its first byte is the message
// number consumed by the message layer. A Packet owns its payload buffer
// exclusively.
type Packet struct {
	Payload []byte
}

// Read reads one frame from r through cipher, verifying and stripping the
// framing. seq is the receive-direction sequence number for this frame.
//
// The first max(BlockSize, 8) bytes are read and, for ciphers that
// encrypt the length field, decrypted before the length is interpreted.
// The declared length is checked against MaxSize before anything further
// is read or allocated. Encrypt-then-MAC ciphers have their MAC verified
// over the ciphertext before any of it is decrypted; others decrypt first
// and verify over the plaintext frame.
func Read(r io.Reader, cipher OpeningCipher, seq uint32) (Packet, error) {
	first := make([]byte, firstBlockLen(cipher))
	if _, err := io.ReadFull(r, first); err != nil {
		return Packet{}, readErr(err)
	}

	etm := cipher.Mac().EncryptThenMac()
	if !etm {
		if err := cipher.Decrypt(first); err != nil {
			return Packet{}, err
		}
	}

	length := binary.BigEndian.Uint32(first[:4])
	if length > MaxSize {
		return Packet{}, fmt.Errorf("%w: declared %d exceeds %d", ErrBadLength, length, MaxSize)
	}
	if int(length)+4 < len(first) {
		return Packet{}, fmt.Errorf("%w: declared %d shorter than first block", ErrBadLength, length)
	}

	buf := make([]byte, 4+int(length))
	copy(buf, first)
	if _, err := io.ReadFull(r, buf[len(first):]); err != nil {
		return Packet{}, readErr(err)
	}

	mac := make([]byte, cipher.Mac().Size())
	if _, err := io.ReadFull(r, mac); err != nil {
		return Packet{}, readErr(err)
	}

	if etm {
		if err := cipher.Open(buf, mac, seq); err != nil {
			return Packet{}, err
		}
		if err := cipher.Decrypt(buf[4:]); err != nil {
			return Packet{}, err
		}
	} else {
		if err := cipher.Decrypt(buf[len(first):]); err != nil {
			return Packet{}, err
		}
		if err := cipher.Open(buf, mac, seq); err != nil {
			return Packet{}, err
		}
	}

	paddingLen := int(buf[4])
	if paddingLen > int(length)-1 {
		return Packet{}, fmt.Errorf("%w: padding %d exceeds %d - 1", ErrBadLength, paddingLen, length)
	}

	payload := buf[5 : 5+int(length)-paddingLen-1]
	payload, err := cipher.Decompress(payload)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Payload: payload}, nil
}

// WriteTo writes p as one frame to w through cipher. seq is the
// send-direction sequence number for this frame.
func (p Packet) WriteTo(w io.Writer, cipher SealingCipher, seq uint32) error {
	compressed, err := cipher.Compress(p.Payload)
	if err != nil {
		return err
	}

	frame, err := cipher.Pad(compressed, cipher.Padding(len(compressed)))
	if err != nil {
		return err
	}

	var mac []byte
	if cipher.Mac().EncryptThenMac() {
		if err := cipher.Encrypt(frame[4:]); err != nil {
			return err
		}
		if mac, err = cipher.Seal(frame, seq); err != nil {
			return err
		}
	} else {
		if mac, err = cipher.Seal(frame, seq); err != nil {
			return err
		}
		if err := cipher.Encrypt(frame); err != nil {
			return err
		}
	}

	if _, err := w.Write(frame); err != nil {
		return err
	}
	if len(mac) > 0 {
		if _, err := w.Write(mac); err != nil {
			return err
		}
	}
	return nil
}

func firstBlockLen(cipher CipherCore) int {
	if bs := cipher.BlockSize(); bs > 8 {
		return bs
	}
	return 8
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
