package wire

import (
	"errors"
	"testing"
)

func TestUtf8RoundTrip(t *testing.T) {
	encoded := AppendUtf8(nil, "héllo")
	decoded, rest, err := DecodeUtf8(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "héllo" || len(rest) != 0 {
		t.Fatalf("got %q rest=%d", decoded, len(rest))
	}
}

func TestUtf8DecodeRejectsInvalid(t *testing.T) {
	raw := AppendBytes(nil, Bytes{0xFF, 0xFE})
	if _, _, err := DecodeUtf8(raw); !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestAsciiDecodeRejectsNonAscii(t *testing.T) {
	// Valid UTF-8, but outside ASCII.
	raw := AppendBytes(nil, Bytes("héllo"))
	if _, _, err := DecodeAscii(raw); !errors.Is(err, ErrNotASCII) {
		t.Fatalf("expected ErrNotASCII, got %v", err)
	}
}

func TestAsciiDecodeRejectsInvalidUtf8(t *testing.T) {
	raw := AppendBytes(nil, Bytes{0xC3})
	if _, _, err := DecodeAscii(raw); !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestAsciiRoundTrip(t *testing.T) {
	encoded := AppendAscii(nil, "ssh-userauth")
	decoded, _, err := DecodeAscii(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "ssh-userauth" {
		t.Fatalf("got %q", decoded)
	}
}

func TestNewAsciiStringValidates(t *testing.T) {
	if _, err := NewAsciiString([]byte("plain")); err != nil {
		t.Fatalf("valid ascii rejected: %v", err)
	}
	if _, err := NewAsciiString([]byte("héllo")); !errors.Is(err, ErrNotASCII) {
		t.Fatalf("expected ErrNotASCII, got %v", err)
	}
}
