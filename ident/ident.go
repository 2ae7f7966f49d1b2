package ident

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Version is the protocol version this library speaks.
const Version = "2.0"

var (
	ErrMalformed     = errors.New("ident: malformed identification string")
	ErrUnexpectedEOF = errors.New("ident: stream ended before identification")
)

// Ident is one peer's identification string.
type Ident struct {
	ProtoVersion    string
	SoftwareVersion string
	Comments        string
}

// V2 builds an SSH-2.0 identification string.
func V2(software, comments string) Ident {
	return Ident{
		ProtoVersion:    Version,
		SoftwareVersion: software,
		Comments:        comments,
	}
}

// String formats the identification line without its trailing CRLF.
func (id Ident) String() string {
	s := fmt.Sprintf("SSH-%s-%s", id.ProtoVersion, id.SoftwareVersion)
	if id.Comments != "" {
		s += " " + id.Comments
	}
	return s
}

// WriteTo writes the identification line followed by CRLF.
func (id Ident) WriteTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\r\n", id.String())
	return err
}

// Read scans lines from r until the identification line, discarding any
// banner lines a server sends first.
func Read(r *bufio.Reader) (Ident, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Ident{}, ErrUnexpectedEOF
			}
			return Ident{}, err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "SSH") {
			return Parse(line)
		}
	}
}

// Parse interprets one identification line, CRLF excluded.
func Parse(line string) (Ident, error) {
	head, comments, _ := strings.Cut(line, " ")
	parts := strings.SplitN(head, "-", 3)
	if len(parts) != 3 || parts[0] != "SSH" || parts[1] == "" || parts[2] == "" {
		return Ident{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	return Ident{
		ProtoVersion:    parts[1],
		SoftwareVersion: parts[2],
		Comments:        comments,
	}, nil
}
