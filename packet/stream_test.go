package packet

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/sshwire/internal/testutil/testlog"
)

func TestStreamSequenceAdvances(t *testing.T) {
	var pipe bytes.Buffer
	out := NewStream(nil, &pipe, zerolog.Nop())
	in := NewStream(&pipe, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if err := out.Send(Packet{Payload: []byte{byte(i)}}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	if out.SendSeq() != 3 {
		t.Fatalf("send seq=%d, want 3", out.SendSeq())
	}
	for i := 0; i < 3; i++ {
		p, err := in.Recv()
		if err != nil {
			t.Fatalf("recv %d: %v", i, err)
		}
		if len(p.Payload) != 1 || p.Payload[0] != byte(i) {
			t.Fatalf("recv %d: payload %v", i, p.Payload)
		}
	}
	if in.RecvSeq() != 3 {
		t.Fatalf("recv seq=%d, want 3", in.RecvSeq())
	}
}

func TestStreamCipherSwap(t *testing.T) {
	log := testlog.Start(t)
	var pipe bytes.Buffer
	out := NewStream(nil, &pipe, log)
	in := NewStream(&pipe, nil, log)

	// One frame pre-keys, then both directions rekey.
	if err := out.Send(Packet{Payload: []byte("pre")}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if p, err := in.Recv(); err != nil || string(p.Payload) != "pre" {
		t.Fatalf("recv: %v %q", err, p.Payload)
	}

	out.SetSealing(&testCipher{block: 16, macSize: 12, etm: true, key: 0x7E})
	in.SetOpening(&testCipher{block: 16, macSize: 12, etm: true, key: 0x7E})

	if err := out.Send(Packet{Payload: []byte("post")}); err != nil {
		t.Fatalf("send post: %v", err)
	}
	p, err := in.Recv()
	if err != nil {
		t.Fatalf("recv post: %v", err)
	}
	if string(p.Payload) != "post" {
		t.Fatalf("payload %q", p.Payload)
	}
	// Counters carried across the swap.
	if out.SendSeq() != 2 || in.RecvSeq() != 2 {
		t.Fatalf("seq out=%d in=%d, want 2/2", out.SendSeq(), in.RecvSeq())
	}
}

func TestStreamRecvFailureDoesNotAdvance(t *testing.T) {
	in := NewStream(bytes.NewReader([]byte{0, 1, 2}), nil, zerolog.Nop())
	if _, err := in.Recv(); err == nil {
		t.Fatalf("expected error on truncated stream")
	}
	if in.RecvSeq() != 0 {
		t.Fatalf("seq advanced to %d after failed recv", in.RecvSeq())
	}
}
