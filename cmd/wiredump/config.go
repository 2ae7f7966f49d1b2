package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/sshwire/cipher"
)

type fileConfig struct {
	Cipher      string `toml:"cipher"`
	Mac         string `toml:"mac"`
	Compression string `toml:"compression"`
	Key         string `toml:"key"`
	IV          string `toml:"iv"`
	MacKey      string `toml:"mac_key"`
}

// loadProfile reads a decryption profile. Key material is hex encoded;
// every field defaults to "none" so an empty profile matches a pre-kex
// transcript.
func loadProfile(path string) (cipher.Config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return cipher.Config{}, fmt.Errorf("load profile: %w", err)
	}

	cfg := cipher.Config{
		Cipher:      defaultName(raw.Cipher),
		Mac:         defaultName(raw.Mac),
		Compression: defaultName(raw.Compression),
	}

	var err error
	if cfg.Key, err = decodeHexField("key", raw.Key); err != nil {
		return cipher.Config{}, err
	}
	if cfg.IV, err = decodeHexField("iv", raw.IV); err != nil {
		return cipher.Config{}, err
	}
	if cfg.MacKey, err = decodeHexField("mac_key", raw.MacKey); err != nil {
		return cipher.Config{}, err
	}
	return cfg, nil
}

func defaultName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "none"
	}
	return name
}

func decodeHexField(field, raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", field, err)
	}
	return b, nil
}
