package wire

import "errors"

var (
	ErrTruncated = errors.New("wire: truncated data")
	ErrNotUTF8   = errors.New("wire: invalid utf-8 data")
	ErrNotASCII  = errors.New("wire: non-ascii data")
)
