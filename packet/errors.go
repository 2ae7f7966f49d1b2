package packet

import "errors"

var (
	ErrBadLength   = errors.New("packet: bad length")
	ErrMacMismatch = errors.New("packet: mac mismatch")
	ErrTruncated   = errors.New("packet: truncated frame")
)
