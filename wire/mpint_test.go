package wire

import (
	"bytes"
	"testing"
)

func TestMpIntEncode(t *testing.T) {
	cases := []struct {
		name string
		in   MpInt
		want []byte
	}{
		{"high bit set gains sign guard", MpInt{0x80}, []byte{0, 0, 0, 2, 0x00, 0x80}},
		{"high bit clear stays bare", MpInt{0x7F}, []byte{0, 0, 0, 1, 0x7F}},
		{"zero is empty", MpInt{0x00}, []byte{0, 0, 0, 0}},
		{"empty stays empty", MpInt{}, []byte{0, 0, 0, 0}},
		{"redundant zeros stripped", MpInt{0x00, 0x00, 0x01}, []byte{0, 0, 0, 1, 0x01}},
		{"strip then guard", MpInt{0x00, 0x00, 0x80}, []byte{0, 0, 0, 2, 0x00, 0x80}},
		{"multi byte", MpInt{0x12, 0x34}, []byte{0, 0, 0, 2, 0x12, 0x34}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AppendMpInt(nil, tc.in)
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestMpIntCanonicalIdempotent(t *testing.T) {
	inputs := []MpInt{
		{0x80},
		{0x00, 0x00, 0x80},
		{0x7F},
		{0x00},
		{0x01, 0x02, 0x03},
	}
	for _, in := range inputs {
		once := AppendMpInt(nil, in)
		decoded, _, err := DecodeMpInt(once)
		if err != nil {
			t.Fatalf("decode %v: %v", in, err)
		}
		twice := AppendMpInt(nil, decoded)
		if !bytes.Equal(once, twice) {
			t.Fatalf("re-encode not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestMpIntDecodeDoesNotCanonicalize(t *testing.T) {
	raw := []byte{0, 0, 0, 3, 0x00, 0x00, 0x01}
	decoded, _, err := DecodeMpInt(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0x00, 0x00, 0x01}) {
		t.Fatalf("decode altered payload: %v", decoded)
	}
}
