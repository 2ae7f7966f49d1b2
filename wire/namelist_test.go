package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestNameListEncode(t *testing.T) {
	encoded := AppendNameList(nil, NameList{"zlib", "none"})
	want := append([]byte{0, 0, 0, 9}, []byte("zlib,none")...)
	if !bytes.Equal(encoded, want) {
		t.Fatalf("got=%v want=%v", encoded, want)
	}
}

func TestNameListEncodeSkipsEmptyNames(t *testing.T) {
	encoded := AppendNameList(nil, NameList{"", "aes128-ctr", "", "none", ""})
	want := append([]byte{0, 0, 0, 15}, []byte("aes128-ctr,none")...)
	if !bytes.Equal(encoded, want) {
		t.Fatalf("got=%q", encoded[4:])
	}
}

func TestNameListDecode(t *testing.T) {
	cases := []struct {
		name string
		text string
		want NameList
	}{
		{"two names", "zlib,none", NameList{"zlib", "none"}},
		{"single", "none", NameList{"none"}},
		{"empty", "", NameList{}},
		{"stray commas dropped", ",a,,b,", NameList{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := AppendAscii(nil, AsciiString(tc.text))
			got, rest, err := DecodeNameList(raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
			if len(rest) != 0 {
				t.Fatalf("unexpected remainder: %v", rest)
			}
		})
	}
}

func TestNameListDecodeRejectsNonAscii(t *testing.T) {
	raw := AppendBytes(nil, Bytes("zlïb,none"))
	if _, _, err := DecodeNameList(raw); !errors.Is(err, ErrNotASCII) {
		t.Fatalf("expected ErrNotASCII, got %v", err)
	}
}

func TestNameListPreferred(t *testing.T) {
	cases := []struct {
		name  string
		self  NameList
		other NameList
		want  string
		ok    bool
	}{
		{"self order wins", NameList{"zlib", "none"}, NameList{"none", "zlib"}, "zlib", true},
		{"first match in self order", NameList{"a", "b", "c"}, NameList{"c", "b"}, "b", true},
		{"no intersection", NameList{"a"}, NameList{"b"}, "", false},
		{"example", NameList{"zlib", "none"}, NameList{"none"}, "none", true},
		{"empty self", NameList{}, NameList{"a"}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.self.Preferred(tc.other)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("got=(%q,%v) want=(%q,%v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestNameListPreferredAgainstSelf(t *testing.T) {
	l := NameList{"curve25519-sha256", "ecdh-sha2-nistp256"}
	got, ok := l.Preferred(l)
	if !ok || got != "curve25519-sha256" {
		t.Fatalf("got=(%q,%v)", got, ok)
	}
}
