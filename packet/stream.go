package packet

import (
	"io"

	"github.com/rs/zerolog"
)

// Stream pairs a transport with per-direction ciphers and sequence
// counters, one frame at a time. Both directions start on the Identity
// cipher; key exchange swaps in negotiated ciphers via SetOpening and
// SetSealing once SSH_MSG_NEWKEYS crosses each direction.
//
// A Stream is not safe for concurrent use of the same direction: exactly
// one in-flight Recv and one in-flight Send at a time. Sequence counters
// advance only after a frame fully completes, and wrap naturally at 2^32.
type Stream struct {
	r io.Reader
	w io.Writer

	opener OpeningCipher
	sealer SealingCipher

	recvSeq uint32
	sendSeq uint32

	log zerolog.Logger
}

// NewStream wraps r and w with Identity ciphers in both directions.
// Callers without a logger pass zerolog.Nop().
func NewStream(r io.Reader, w io.Writer, log zerolog.Logger) *Stream {
	return &Stream{
		r:      r,
		w:      w,
		opener: Identity{},
		sealer: Identity{},
		log:    log,
	}
}

// SetOpening replaces the receive-direction cipher.
func (s *Stream) SetOpening(cipher OpeningCipher) { s.opener = cipher }

// SetSealing replaces the send-direction cipher.
func (s *Stream) SetSealing(cipher SealingCipher) { s.sealer = cipher }

// RecvSeq returns the receive-direction sequence number of the next frame.
func (s *Stream) RecvSeq() uint32 { return s.recvSeq }

// SendSeq returns the send-direction sequence number of the next frame.
func (s *Stream) SendSeq() uint32 { return s.sendSeq }

// Recv reads the next frame. Any error is fatal to the stream: the
// sequence counter does not advance and the two ends are considered
// desynchronized.
func (s *Stream) Recv() (Packet, error) {
	p, err := Read(s.r, s.opener, s.recvSeq)
	if err != nil {
		s.log.Debug().Err(err).Uint32("seq", s.recvSeq).Msg("recv frame failed")
		return Packet{}, err
	}
	s.log.Trace().Uint32("seq", s.recvSeq).Int("payload", len(p.Payload)).Msg("recv frame")
	s.recvSeq++
	return p, nil
}

// Send writes p as the next frame.
func (s *Stream) Send(p Packet) error {
	if err := p.WriteTo(s.w, s.sealer, s.sendSeq); err != nil {
		s.log.Debug().Err(err).Uint32("seq", s.sendSeq).Msg("send frame failed")
		return err
	}
	s.log.Trace().Uint32("seq", s.sendSeq).Int("payload", len(p.Payload)).Msg("send frame")
	s.sendSeq++
	return nil
}
