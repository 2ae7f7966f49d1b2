package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blowfish"

	"github.com/danmuck/sshwire/packet"
	"github.com/danmuck/sshwire/wire"
)

// Config selects one direction's algorithms and key material by their
// negotiation names.
type Config struct {
	Cipher      string
	Mac         string
	Compression string

	Key    []byte
	IV     []byte
	MacKey []byte
}

type cipherSpec struct {
	keyLen    int
	ivLen     int
	blockSize int

	// newTransform builds the in-place transform for one direction.
	// encrypt selects the CBC direction; CTR is symmetric.
	newTransform func(key, iv []byte, encrypt bool) (func([]byte) error, error)
}

var cipherSpecs = map[string]cipherSpec{
	"none":         {0, 0, 8, nil},
	"aes128-ctr":   {16, aes.BlockSize, aes.BlockSize, newAESCTR},
	"aes192-ctr":   {24, aes.BlockSize, aes.BlockSize, newAESCTR},
	"aes256-ctr":   {32, aes.BlockSize, aes.BlockSize, newAESCTR},
	"blowfish-cbc": {16, blowfish.BlockSize, blowfish.BlockSize, newBlowfishCBC},
}

// cipherPreference orders Ciphers() output; negotiation feeds it to
// wire.NameList.Preferred.
var cipherPreference = []string{"aes256-ctr", "aes192-ctr", "aes128-ctr", "blowfish-cbc", "none"}

// Ciphers lists the supported cipher names in preference order.
func Ciphers() wire.NameList {
	return append(wire.NameList(nil), cipherPreference...)
}

func newAESCTR(key, iv []byte, encrypt bool) (func([]byte) error, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	stream := stdcipher.NewCTR(block, iv)
	return func(buf []byte) error {
		stream.XORKeyStream(buf, buf)
		return nil
	}, nil
}

func newBlowfishCBC(key, iv []byte, encrypt bool) (func([]byte) error, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	var mode stdcipher.BlockMode
	if encrypt {
		mode = stdcipher.NewCBCEncrypter(block, iv)
	} else {
		mode = stdcipher.NewCBCDecrypter(block, iv)
	}
	return func(buf []byte) error {
		if len(buf)%block.BlockSize() != 0 {
			return fmt.Errorf("cipher: cbc span %d not block aligned", len(buf))
		}
		mode.CryptBlocks(buf, buf)
		return nil
	}, nil
}

// suite carries the state shared by both direction types.
type suite struct {
	transform func([]byte) error
	blockSize int
	mac       macState
	comp      compression
}

func (s *suite) BlockSize() int { return s.blockSize }

func (s *suite) Mac() packet.Mac { return s.mac.info }

func (s *suite) Padding(payloadLen int) int {
	return packet.PaddingLength(s.blockSize, s.mac.info.EncryptThenMac(), payloadLen)
}

func (s *suite) apply(buf []byte) error {
	if s.transform == nil {
		return nil
	}
	return s.transform(buf)
}

type opening struct{ suite }

func (o *opening) Decrypt(buf []byte) error { return o.apply(buf) }

func (o *opening) Open(buf, mac []byte, seq uint32) error {
	return o.mac.verify(buf, mac, seq)
}

func (o *opening) Decompress(payload []byte) ([]byte, error) {
	return o.comp.decompress(payload)
}

type sealing struct {
	suite
	random io.Reader
}

func (s *sealing) Compress(payload []byte) ([]byte, error) {
	return s.comp.compress(payload)
}

func (s *sealing) Pad(payload []byte, paddingLen int) ([]byte, error) {
	return packet.BuildFrame(payload, paddingLen, s.random)
}

func (s *sealing) Encrypt(buf []byte) error { return s.apply(buf) }

func (s *sealing) Seal(buf []byte, seq uint32) ([]byte, error) {
	return s.mac.sign(buf, seq), nil
}

// NewOpening builds the receive-direction cipher for cfg.
func NewOpening(cfg Config) (packet.OpeningCipher, error) {
	s, err := newSuite(cfg, false)
	if err != nil {
		return nil, err
	}
	return &opening{suite: *s}, nil
}

// NewSealing builds the send-direction cipher for cfg. Padding bytes are
// drawn from crypto/rand.
func NewSealing(cfg Config) (packet.SealingCipher, error) {
	s, err := newSuite(cfg, true)
	if err != nil {
		return nil, err
	}
	return &sealing{suite: *s, random: rand.Reader}, nil
}

func newSuite(cfg Config, encrypt bool) (*suite, error) {
	spec, ok := cipherSpecs[cfg.Cipher]
	if !ok {
		return nil, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, cfg.Cipher)
	}
	if len(cfg.Key) != spec.keyLen {
		return nil, fmt.Errorf("%w: cipher %q wants %d key bytes, got %d",
			ErrBadKeyLength, cfg.Cipher, spec.keyLen, len(cfg.Key))
	}
	if len(cfg.IV) != spec.ivLen {
		return nil, fmt.Errorf("%w: cipher %q wants %d iv bytes, got %d",
			ErrBadIVLength, cfg.Cipher, spec.ivLen, len(cfg.IV))
	}

	mac, err := newMacState(cfg.Mac, cfg.MacKey)
	if err != nil {
		return nil, err
	}
	comp, err := newCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	s := &suite{blockSize: spec.blockSize, mac: mac, comp: comp}
	if spec.newTransform != nil {
		if s.transform, err = spec.newTransform(cfg.Key, cfg.IV, encrypt); err != nil {
			return nil, err
		}
	}
	return s, nil
}
