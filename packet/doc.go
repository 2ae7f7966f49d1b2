// Package packet owns SSH 2.0 binary packet framing.
//
// Ownership boundary:
// - the Packet value (one decrypted protocol message payload)
// - cipher capability contracts (CipherCore, OpeningCipher, SealingCipher)
// - the shared padding computation
// - frame read/write orchestration around a negotiated cipher
// - the Stream transport wrapper with per-direction sequence counters
//
// Framing follows RFC 4253 section 6. Concrete algorithms live behind the
// capability contracts; this package never touches key material.
package packet
