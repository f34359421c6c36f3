/*
Package config persists the defaults the command line tool applies when
flags are absent: the marker pair, the synthesis alphabet and sizing, and
an optional seed phrase. The file is plain yaml in the user's home
directory, editable by hand.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dtinel/sneaky/stegano"
)

// Location of the per-user configuration.
const (
	Dir  = ".sneaky"
	File = "config.yaml"
)

/*
Config mirrors the yaml file. Marker runes are stored as strings so
invisible code points can be written in their escaped U+XXXX form and the
file stays readable in any editor.
*/
type Config struct {
	Zero string `yaml:"zero"` // marker rune for 0, literal or U+XXXX escape
	One  string `yaml:"one"`  // marker rune for 1

	Alphabet string `yaml:"alphabet"` // draw set for synthesized carriers

	// how many synthesized carrier runes to generate per secret token
	CarrierFactor int `yaml:"carrier_factor"`

	// compress payloads by default
	Compress bool `yaml:"compress"`

	// when set, replaces clock-based seeding so runs are reproducible
	// without remembering numeric seeds
	SeedPhrase string `yaml:"seed_phrase,omitempty"`
}

// Default returns the stock configuration: invisible markers, lowercase
// alphabet, sixteen carrier runes per token.
func Default() *Config {
	return &Config{
		Zero:          FormatRune(stegano.DefaultZero),
		One:           FormatRune(stegano.DefaultOne),
		Alphabet:      string(stegano.DefaultAlphabet),
		CarrierFactor: stegano.DefaultCarrierFactor,
	}
}

// DefaultPath returns the usual place of the config file, normally
// ~/.sneaky/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, Dir, File), nil
}

/*
Load reads a yaml configuration. A missing file is not an error: the
defaults come back instead, so the tool works before any setup. Fields
absent from the file keep their default values.
*/
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration, creating its directory on first use.
func (c *Config) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Encode renders the configuration as yaml.
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// Tokens parses the marker fields into a checked pair.
func (c *Config) Tokens() (stegano.TokenPair, error) {
	zero, err := ParseRune(c.Zero)
	if err != nil {
		return stegano.TokenPair{}, fmt.Errorf("zero marker: %w", err)
	}
	one, err := ParseRune(c.One)
	if err != nil {
		return stegano.TokenPair{}, fmt.Errorf("one marker: %w", err)
	}
	tp := stegano.TokenPair{Zero: zero, One: one}
	return tp, tp.Check()
}

// AlphabetRunes returns the synthesis alphabet as runes, falling back to
// the default set when the field is empty.
func (c *Config) AlphabetRunes() []rune {
	if c.Alphabet == "" {
		return stegano.DefaultAlphabet
	}
	return []rune(c.Alphabet)
}

// ParseRune accepts a single literal character or a U+XXXX / 0xXXXX
// escape and returns the rune it names.
func ParseRune(s string) (rune, error) {
	esc := ""
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		esc = s[2:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		esc = s[2:]
	}
	if esc != "" {
		n, err := strconv.ParseUint(esc, 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("bad rune escape %q", s)
		}
		return rune(n), nil
	}
	if s == "" {
		return 0, fmt.Errorf("empty marker")
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("marker %q must be a single character", s)
	}
	return r, nil
}

// FormatRune renders printable ASCII as itself and everything else in
// U+XXXX form, the inverse of ParseRune.
func FormatRune(r rune) string {
	if r > 0x20 && r < 0x7F {
		return string(r)
	}
	return fmt.Sprintf("U+%04X", r)
}
