package cipher

import "errors"

var (
	ErrUnknownAlgorithm = errors.New("cipher: unknown algorithm")
	ErrBadKeyLength     = errors.New("cipher: bad key length")
	ErrBadIVLength      = errors.New("cipher: bad iv length")
	ErrPayloadTooLarge  = errors.New("cipher: decompressed payload too large")
)
