package msg

import (
	"errors"
	"fmt"

	"github.com/danmuck/sshwire/packet"
)

// Transport-layer message numbers, RFC 4253 section 12.
const (
	NumDisconnect     uint8 = 1
	NumIgnore         uint8 = 2
	NumUnimplemented  uint8 = 3
	NumDebug          uint8 = 4
	NumServiceRequest uint8 = 5
	NumServiceAccept  uint8 = 6
	NumKexInit        uint8 = 20
	NumNewKeys        uint8 = 21
)

var (
	ErrEmptyPayload   = errors.New("msg: empty payload")
	ErrUnknownMessage = errors.New("msg: unknown message number")
	ErrWrongMessage   = errors.New("msg: wrong message number")
	ErrTrailingData   = errors.New("msg: trailing data after message")
)

// Name returns the protocol name for a transport message number.
func Name(num uint8) string {
	switch num {
	case NumDisconnect:
		return "SSH_MSG_DISCONNECT"
	case NumIgnore:
		return "SSH_MSG_IGNORE"
	case NumUnimplemented:
		return "SSH_MSG_UNIMPLEMENTED"
	case NumDebug:
		return "SSH_MSG_DEBUG"
	case NumServiceRequest:
		return "SSH_MSG_SERVICE_REQUEST"
	case NumServiceAccept:
		return "SSH_MSG_SERVICE_ACCEPT"
	case NumKexInit:
		return "SSH_MSG_KEXINIT"
	case NumNewKeys:
		return "SSH_MSG_NEWKEYS"
	default:
		return fmt.Sprintf("SSH_MSG_%d", num)
	}
}

// Message is one transport record expressible as a packet payload.
type Message interface {
	Number() uint8
	Marshal() []byte
}

// ToPacket wraps a marshalled record as a logical packet.
func ToPacket(m Message) packet.Packet {
	return packet.Packet{Payload: m.Marshal()}
}

// Number returns the message-number discriminant of p.
func Number(p packet.Packet) (uint8, error) {
	if len(p.Payload) == 0 {
		return 0, ErrEmptyPayload
	}
	return p.Payload[0], nil
}

// Parse dispatches p to the transport record named by its leading byte.
func Parse(p packet.Packet) (Message, error) {
	num, err := Number(p)
	if err != nil {
		return nil, err
	}
	switch num {
	case NumDisconnect:
		return ParseDisconnect(p.Payload)
	case NumIgnore:
		return ParseIgnore(p.Payload)
	case NumUnimplemented:
		return ParseUnimplemented(p.Payload)
	case NumDebug:
		return ParseDebug(p.Payload)
	case NumServiceRequest:
		return ParseServiceRequest(p.Payload)
	case NumServiceAccept:
		return ParseServiceAccept(p.Payload)
	case NumKexInit:
		return ParseKexInit(p.Payload)
	case NumNewKeys:
		return ParseNewKeys(p.Payload)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, num)
	}
}

func expectNumber(payload []byte, want uint8) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if payload[0] != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongMessage, payload[0], want)
	}
	return payload[1:], nil
}

func expectEnd(rest []byte) error {
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, len(rest))
	}
	return nil
}
