// Package msg owns the RFC 4253 transport-layer message records built on
// the wire primitives.
//
// Ownership boundary:
// - message-number constants and dispatch
// - transport records (disconnect, ignore, debug, service, kexinit, newkeys)
// - conversion to and from packet payloads
//
// The leading payload byte is the message number. Key-exchange
// computation, authentication and channel management live above this
// package; only their wire records that the transport itself consumes
// are defined here.
package msg
