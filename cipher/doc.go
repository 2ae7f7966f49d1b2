// Package cipher owns the concrete cipher suites behind the packet
// capability contracts.
//
// Ownership boundary:
// - cipher, mac and compression registries keyed by negotiation name
// - per-direction suite construction from key material
// - hmac sealing/opening with constant-time verification
// - zlib payload compression
//
// Key derivation and rotation are the caller's concern; a suite only
// consumes the key material it is handed.
package cipher
