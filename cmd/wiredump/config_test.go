package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfileDefaults(t *testing.T) {
	cfg, err := loadProfile(writeProfile(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cipher != "none" || cfg.Mac != "none" || cfg.Compression != "none" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Key != nil || cfg.IV != nil || cfg.MacKey != nil {
		t.Fatalf("unexpected key material: %+v", cfg)
	}
}

func TestLoadProfileFull(t *testing.T) {
	body := `
cipher = "aes128-ctr"
mac = "hmac-sha2-256-etm@openssh.com"
compression = "zlib"
key = "00112233445566778899aabbccddeeff"
iv = "ffeeddccbbaa99887766554433221100"
mac_key = "0102030405060708091011121314151617181920212223242526272829303132"
`
	cfg, err := loadProfile(writeProfile(t, body))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cipher != "aes128-ctr" || len(cfg.Key) != 16 || len(cfg.IV) != 16 || len(cfg.MacKey) != 32 {
		t.Fatalf("profile mismatch: %+v", cfg)
	}
}

func TestLoadProfileBadHex(t *testing.T) {
	if _, err := loadProfile(writeProfile(t, `key = "zz"`)); err == nil {
		t.Fatalf("expected error for bad hex key")
	}
}
