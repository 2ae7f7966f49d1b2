package msg

import (
	"fmt"

	"github.com/danmuck/sshwire/wire"
)

// CookieSize is the fixed length of the kexinit random cookie.
const CookieSize = 16

// KexInit opens algorithm negotiation, SSH_MSG_KEXINIT. Each name-list
// is ordered by preference; both sides resolve a common choice with
// wire.NameList.Preferred over the client's ordering.
type KexInit struct {
	Cookie [CookieSize]byte

	KexAlgorithms             wire.NameList
	HostKeyAlgorithms         wire.NameList
	CiphersClientToServer     wire.NameList
	CiphersServerToClient     wire.NameList
	MacsClientToServer        wire.NameList
	MacsServerToClient        wire.NameList
	CompressionClientToServer wire.NameList
	CompressionServerToClient wire.NameList
	LanguagesClientToServer   wire.NameList
	LanguagesServerToClient   wire.NameList

	FirstKexPacketFollows wire.Boolean

	// Reserved for future extension, always zero on send.
	Reserved uint32
}

func (KexInit) Number() uint8 { return NumKexInit }

func (m KexInit) Marshal() []byte {
	out := wire.AppendUint8(nil, NumKexInit)
	out = append(out, m.Cookie[:]...)
	for _, list := range m.nameLists() {
		out = wire.AppendNameList(out, *list)
	}
	out = wire.AppendBoolean(out, m.FirstKexPacketFollows)
	out = wire.AppendUint32(out, m.Reserved)
	return out
}

func ParseKexInit(payload []byte) (KexInit, error) {
	var m KexInit
	rest, err := expectNumber(payload, NumKexInit)
	if err != nil {
		return m, err
	}
	if len(rest) < CookieSize {
		return m, fmt.Errorf("kexinit cookie: %w", wire.ErrTruncated)
	}
	copy(m.Cookie[:], rest[:CookieSize])
	rest = rest[CookieSize:]

	for i, list := range m.nameLists() {
		if *list, rest, err = wire.DecodeNameList(rest); err != nil {
			return m, fmt.Errorf("kexinit name-list %d: %w", i, err)
		}
	}
	if m.FirstKexPacketFollows, rest, err = wire.DecodeBoolean(rest); err != nil {
		return m, fmt.Errorf("kexinit first-kex-packet-follows: %w", err)
	}
	if m.Reserved, rest, err = wire.DecodeUint32(rest); err != nil {
		return m, fmt.Errorf("kexinit reserved: %w", err)
	}
	return m, expectEnd(rest)
}

// nameLists yields the ten lists in wire order.
func (m *KexInit) nameLists() []*wire.NameList {
	return []*wire.NameList{
		&m.KexAlgorithms,
		&m.HostKeyAlgorithms,
		&m.CiphersClientToServer,
		&m.CiphersServerToClient,
		&m.MacsClientToServer,
		&m.MacsServerToClient,
		&m.CompressionClientToServer,
		&m.CompressionServerToClient,
		&m.LanguagesClientToServer,
		&m.LanguagesServerToClient,
	}
}
