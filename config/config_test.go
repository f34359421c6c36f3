package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dtinel/sneaky/stegano"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), Dir, File)
	conf := &Config{
		Zero:          "z",
		One:           "U+200C",
		Alphabet:      "abcdef",
		CarrierFactor: 4,
		Compress:      true,
		SeedPhrase:    "winter",
	}
	if err := conf.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(conf, loaded); diff != "" {
		t.Fatalf("configuration changed across save/load (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file: %v", err)
	}
	if diff := cmp.Diff(Default(), loaded); diff != "" {
		t.Fatalf("missing file did not yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("zero: z\none: o\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Zero != "z" || loaded.One != "o" {
		t.Fatalf("markers = %q/%q, want z/o", loaded.Zero, loaded.One)
	}
	if loaded.CarrierFactor != stegano.DefaultCarrierFactor {
		t.Fatalf("CarrierFactor = %d, want default %d", loaded.CarrierFactor, stegano.DefaultCarrierFactor)
	}
	if loaded.Alphabet != string(stegano.DefaultAlphabet) {
		t.Fatalf("Alphabet = %q, want default", loaded.Alphabet)
	}
}

func TestLoadBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("zero: [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted broken yaml")
	}
}

func TestTokens(t *testing.T) {
	conf := Default()
	tp, err := conf.Tokens()
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tp != stegano.DefaultTokens() {
		t.Fatalf("Tokens = %q/%q, want the defaults", tp.Zero, tp.One)
	}

	conf = &Config{Zero: "x", One: "x"}
	if _, err := conf.Tokens(); !errors.Is(err, stegano.ErrTokenPair) {
		t.Fatalf("equal markers err = %v, want ErrTokenPair", err)
	}
}

func TestParseRune(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"z", 'z', true},
		{"é", 'é', true},
		{"U+200B", '​', true},
		{"u+200c", '‌', true},
		{"0x200D", '‍', true},
		{"0X007A", 'z', true},
		{"", 0, false},
		{"zz", 0, false},
		{"U+ZZZZ", 0, false},
		{"U+110000", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseRune(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Fatalf("ParseRune(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Fatalf("ParseRune(%q) succeeded, want error", tt.in)
		}
	}
}

func TestFormatRune(t *testing.T) {
	if got := FormatRune('z'); got != "z" {
		t.Fatalf("FormatRune('z') = %q", got)
	}
	if got := FormatRune('​'); got != "U+200B" {
		t.Fatalf("FormatRune(zero width space) = %q", got)
	}
	if got := FormatRune(' '); got != "U+0020" {
		t.Fatalf("FormatRune(' ') = %q", got)
	}

	// FormatRune output must parse back to the same rune.
	for _, r := range []rune{'a', 'Z', '​', '‌', 'é', 0} {
		back, err := ParseRune(FormatRune(r))
		if err != nil || back != r {
			t.Fatalf("round trip %q -> %q: %q, %v", r, FormatRune(r), back, err)
		}
	}
}
