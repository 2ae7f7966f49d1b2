package cipher

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/danmuck/sshwire/packet"
	"github.com/danmuck/sshwire/wire"
)

type macSpec struct {
	keyLen  int
	size    int
	etm     bool
	newHash func() hash.Hash
}

var macSpecs = map[string]macSpec{
	"none":                          {0, 0, false, nil},
	"hmac-sha1":                     {20, 20, false, sha1.New},
	"hmac-sha2-256":                 {32, 32, false, sha256.New},
	"hmac-sha1-etm@openssh.com":     {20, 20, true, sha1.New},
	"hmac-sha2-256-etm@openssh.com": {32, 32, true, sha256.New},
}

var macPreference = []string{
	"hmac-sha2-256-etm@openssh.com",
	"hmac-sha2-256",
	"hmac-sha1-etm@openssh.com",
	"hmac-sha1",
	"none",
}

// Macs lists the supported mac names in preference order.
func Macs() wire.NameList {
	return append(wire.NameList(nil), macPreference...)
}

type macInfo struct {
	size int
	etm  bool
}

func (m macInfo) Size() int            { return m.size }
func (m macInfo) EncryptThenMac() bool { return m.etm }

// macState signs and verifies frames. The MAC input is the big-endian
// sequence number followed by the frame bytes the codec hands over:
// the plaintext frame for plain macs, length plus ciphertext for etm.
type macState struct {
	info macInfo
	key  []byte
	new  func() hash.Hash
}

func newMacState(name string, key []byte) (macState, error) {
	spec, ok := macSpecs[name]
	if !ok {
		return macState{}, fmt.Errorf("%w: mac %q", ErrUnknownAlgorithm, name)
	}
	if len(key) != spec.keyLen {
		return macState{}, fmt.Errorf("%w: mac %q wants %d key bytes, got %d",
			ErrBadKeyLength, name, spec.keyLen, len(key))
	}
	return macState{
		info: macInfo{size: spec.size, etm: spec.etm},
		key:  append([]byte(nil), key...),
		new:  spec.newHash,
	}, nil
}

func (m macState) sign(buf []byte, seq uint32) []byte {
	if m.new == nil {
		return nil
	}
	h := hmac.New(m.new, m.key)
	var seqBytes [4]byte
	binary.BigEndian.PutUint32(seqBytes[:], seq)
	h.Write(seqBytes[:])
	h.Write(buf)
	return h.Sum(nil)
}

func (m macState) verify(buf, mac []byte, seq uint32) error {
	if m.new == nil {
		if len(mac) != 0 {
			return fmt.Errorf("%w: unexpected mac bytes", packet.ErrMacMismatch)
		}
		return nil
	}
	if !hmac.Equal(m.sign(buf, seq), mac) {
		return packet.ErrMacMismatch
	}
	return nil
}
