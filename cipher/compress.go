package cipher

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/danmuck/sshwire/packet"
	"github.com/danmuck/sshwire/wire"
)

type compression interface {
	compress(payload []byte) ([]byte, error)
	decompress(payload []byte) ([]byte, error)
}

var compressionPreference = []string{"none", "zlib"}

// Compressions lists the supported compression names in preference order.
func Compressions() wire.NameList {
	return append(wire.NameList(nil), compressionPreference...)
}

func newCompression(name string) (compression, error) {
	switch name {
	case "none", "":
		return passthrough{}, nil
	case "zlib":
		return zlibCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: compression %q", ErrUnknownAlgorithm, name)
	}
}

type passthrough struct{}

func (passthrough) compress(payload []byte) ([]byte, error)   { return payload, nil }
func (passthrough) decompress(payload []byte) ([]byte, error) { return payload, nil }

type zlibCodec struct{}

func (zlibCodec) compress(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (zlibCodec) decompress(payload []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	// A frame fits MaxSize on the wire; anything expanding past that is
	// a decompression bomb.
	out, err := io.ReadAll(io.LimitReader(r, packet.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > packet.MaxSize {
		return nil, ErrPayloadTooLarge
	}
	return out, nil
}
