package packet

import (
	"crypto/rand"
	"fmt"
)

// Identity is the `none` cipher state both directions start in before the
// first key exchange completes: no encryption, no MAC, no compression.
// It implements both OpeningCipher and SealingCipher.
type Identity struct{}

type noMac struct{}

func (noMac) Size() int            { return 0 }
func (noMac) EncryptThenMac() bool { return false }

func (Identity) BlockSize() int { return 8 }

func (Identity) Mac() Mac { return noMac{} }

func (c Identity) Padding(payloadLen int) int {
	return PaddingLength(c.BlockSize(), false, payloadLen)
}

func (Identity) Decrypt(buf []byte) error { return nil }

func (Identity) Open(buf, mac []byte, seq uint32) error {
	if len(mac) != 0 {
		return fmt.Errorf("%w: unexpected mac on none cipher", ErrMacMismatch)
	}
	return nil
}

func (Identity) Decompress(payload []byte) ([]byte, error) { return payload, nil }

func (Identity) Compress(payload []byte) ([]byte, error) { return payload, nil }

func (Identity) Pad(payload []byte, paddingLen int) ([]byte, error) {
	return BuildFrame(payload, paddingLen, rand.Reader)
}

func (Identity) Encrypt(buf []byte) error { return nil }

func (Identity) Seal(buf []byte, seq uint32) ([]byte, error) { return nil, nil }
