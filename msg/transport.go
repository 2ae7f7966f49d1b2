package msg

import (
	"fmt"

	"github.com/danmuck/sshwire/wire"
)

// Disconnect reason codes, RFC 4253 section 11.1.
const (
	DisconnectProtocolError               uint32 = 2
	DisconnectKeyExchangeFailed           uint32 = 3
	DisconnectMacError                    uint32 = 5
	DisconnectCompressionError            uint32 = 6
	DisconnectProtocolVersionNotSupported uint32 = 8
	DisconnectByApplication               uint32 = 11
)

// Disconnect terminates the connection, SSH_MSG_DISCONNECT.
type Disconnect struct {
	ReasonCode  uint32
	Description wire.Utf8String
	LanguageTag wire.AsciiString
}

func (Disconnect) Number() uint8 { return NumDisconnect }

func (m Disconnect) Marshal() []byte {
	out := wire.AppendUint8(nil, NumDisconnect)
	out = wire.AppendUint32(out, m.ReasonCode)
	out = wire.AppendUtf8(out, m.Description)
	out = wire.AppendAscii(out, m.LanguageTag)
	return out
}

func ParseDisconnect(payload []byte) (Disconnect, error) {
	var m Disconnect
	rest, err := expectNumber(payload, NumDisconnect)
	if err != nil {
		return m, err
	}
	if m.ReasonCode, rest, err = wire.DecodeUint32(rest); err != nil {
		return m, fmt.Errorf("disconnect reason: %w", err)
	}
	if m.Description, rest, err = wire.DecodeUtf8(rest); err != nil {
		return m, fmt.Errorf("disconnect description: %w", err)
	}
	if m.LanguageTag, rest, err = wire.DecodeAscii(rest); err != nil {
		return m, fmt.Errorf("disconnect language: %w", err)
	}
	return m, expectEnd(rest)
}

// Ignore carries data to be discarded, SSH_MSG_IGNORE.
type Ignore struct {
	Data wire.Bytes
}

func (Ignore) Number() uint8 { return NumIgnore }

func (m Ignore) Marshal() []byte {
	return wire.AppendBytes(wire.AppendUint8(nil, NumIgnore), m.Data)
}

func ParseIgnore(payload []byte) (Ignore, error) {
	var m Ignore
	rest, err := expectNumber(payload, NumIgnore)
	if err != nil {
		return m, err
	}
	if m.Data, rest, err = wire.DecodeBytes(rest); err != nil {
		return m, fmt.Errorf("ignore data: %w", err)
	}
	return m, expectEnd(rest)
}

// Unimplemented rejects an unrecognized packet by its sequence number,
// SSH_MSG_UNIMPLEMENTED.
type Unimplemented struct {
	Seq uint32
}

func (Unimplemented) Number() uint8 { return NumUnimplemented }

func (m Unimplemented) Marshal() []byte {
	return wire.AppendUint32(wire.AppendUint8(nil, NumUnimplemented), m.Seq)
}

func ParseUnimplemented(payload []byte) (Unimplemented, error) {
	var m Unimplemented
	rest, err := expectNumber(payload, NumUnimplemented)
	if err != nil {
		return m, err
	}
	if m.Seq, rest, err = wire.DecodeUint32(rest); err != nil {
		return m, fmt.Errorf("unimplemented seq: %w", err)
	}
	return m, expectEnd(rest)
}

// Debug carries diagnostics, SSH_MSG_DEBUG.
type Debug struct {
	AlwaysDisplay wire.Boolean
	Message       wire.Utf8String
	LanguageTag   wire.AsciiString
}

func (Debug) Number() uint8 { return NumDebug }

func (m Debug) Marshal() []byte {
	out := wire.AppendUint8(nil, NumDebug)
	out = wire.AppendBoolean(out, m.AlwaysDisplay)
	out = wire.AppendUtf8(out, m.Message)
	out = wire.AppendAscii(out, m.LanguageTag)
	return out
}

func ParseDebug(payload []byte) (Debug, error) {
	var m Debug
	rest, err := expectNumber(payload, NumDebug)
	if err != nil {
		return m, err
	}
	if m.AlwaysDisplay, rest, err = wire.DecodeBoolean(rest); err != nil {
		return m, fmt.Errorf("debug always-display: %w", err)
	}
	if m.Message, rest, err = wire.DecodeUtf8(rest); err != nil {
		return m, fmt.Errorf("debug message: %w", err)
	}
	if m.LanguageTag, rest, err = wire.DecodeAscii(rest); err != nil {
		return m, fmt.Errorf("debug language: %w", err)
	}
	return m, expectEnd(rest)
}

// ServiceRequest asks for a service by name, SSH_MSG_SERVICE_REQUEST.
type ServiceRequest struct {
	Service wire.AsciiString
}

func (ServiceRequest) Number() uint8 { return NumServiceRequest }

func (m ServiceRequest) Marshal() []byte {
	return wire.AppendAscii(wire.AppendUint8(nil, NumServiceRequest), m.Service)
}

func ParseServiceRequest(payload []byte) (ServiceRequest, error) {
	var m ServiceRequest
	rest, err := expectNumber(payload, NumServiceRequest)
	if err != nil {
		return m, err
	}
	if m.Service, rest, err = wire.DecodeAscii(rest); err != nil {
		return m, fmt.Errorf("service request name: %w", err)
	}
	return m, expectEnd(rest)
}

// ServiceAccept grants a requested service, SSH_MSG_SERVICE_ACCEPT.
type ServiceAccept struct {
	Service wire.AsciiString
}

func (ServiceAccept) Number() uint8 { return NumServiceAccept }

func (m ServiceAccept) Marshal() []byte {
	return wire.AppendAscii(wire.AppendUint8(nil, NumServiceAccept), m.Service)
}

func ParseServiceAccept(payload []byte) (ServiceAccept, error) {
	var m ServiceAccept
	rest, err := expectNumber(payload, NumServiceAccept)
	if err != nil {
		return m, err
	}
	if m.Service, rest, err = wire.DecodeAscii(rest); err != nil {
		return m, fmt.Errorf("service accept name: %w", err)
	}
	return m, expectEnd(rest)
}

// NewKeys signals the cipher swap, SSH_MSG_NEWKEYS.
type NewKeys struct{}

func (NewKeys) Number() uint8 { return NumNewKeys }

func (NewKeys) Marshal() []byte { return []byte{NumNewKeys} }

func ParseNewKeys(payload []byte) (NewKeys, error) {
	rest, err := expectNumber(payload, NumNewKeys)
	if err != nil {
		return NewKeys{}, err
	}
	return NewKeys{}, expectEnd(rest)
}
