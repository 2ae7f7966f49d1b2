// Command wiredump inspects a recorded SSH transcript: an optional
// identification line followed by binary frames. With a decryption
// profile it opens encrypted frames; without one it expects the pre-kex
// `none` state.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/danmuck/sshwire/cipher"
	"github.com/danmuck/sshwire/ident"
	"github.com/danmuck/sshwire/logging"
	"github.com/danmuck/sshwire/msg"
	"github.com/danmuck/sshwire/packet"
)

type options struct {
	input   string
	profile string
	noIdent bool
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "in", "-", "transcript file, - for stdin")
	flag.StringVar(&opts.profile, "profile", "", "toml decryption profile")
	flag.BoolVar(&opts.noIdent, "no-ident", false, "transcript has no identification line")
	flag.Parse()

	logging.ConfigureRuntime()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "wiredump: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	log := logging.Base()

	in := os.Stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	br := bufio.NewReader(in)

	opening, err := openingCipher(opts.profile)
	if err != nil {
		return err
	}

	if !opts.noIdent {
		id, err := ident.Read(br)
		if err != nil {
			return err
		}
		log.Info().
			Str("proto", id.ProtoVersion).
			Str("software", id.SoftwareVersion).
			Str("comments", id.Comments).
			Msg("identification")
	}

	for seq := uint32(0); ; seq++ {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			log.Info().Uint32("frames", seq).Msg("transcript complete")
			return nil
		}
		p, err := packet.Read(br, opening, seq)
		if err != nil {
			return fmt.Errorf("frame %d: %w", seq, err)
		}
		dumpFrame(log, seq, p)
	}
}

func openingCipher(profile string) (packet.OpeningCipher, error) {
	if profile == "" {
		return packet.Identity{}, nil
	}
	cfg, err := loadProfile(profile)
	if err != nil {
		return nil, err
	}
	return cipher.NewOpening(cfg)
}

func dumpFrame(log zerolog.Logger, seq uint32, p packet.Packet) {
	num, err := msg.Number(p)
	if err != nil {
		log.Warn().Uint32("seq", seq).Msg("empty payload")
		return
	}
	event := log.Info().
		Uint32("seq", seq).
		Str("message", msg.Name(num)).
		Int("payload", len(p.Payload))

	if record, err := msg.Parse(p); err == nil {
		event = event.Interface("record", record)
	}
	event.Msg("frame")
}
