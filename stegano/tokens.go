package stegano

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default marker runes. Both are zero width, so a mixed text renders
// exactly like its carrier in most fonts and terminals.
const (
	DefaultZero = '​' // ZERO WIDTH SPACE
	DefaultOne  = '‌' // ZERO WIDTH NON-JOINER
)

/*
TokenPair holds the two marker runes standing for the binary digits 0 and
1. Extraction keeps every occurrence of either marker, so the carrier must
not contain them: a marker already present in the carrier ends up inside
the revealed secret. The pair itself never scans carriers; that check
belongs to whoever supplies the carrier.
*/
type TokenPair struct {
	Zero rune
	One  rune
}

// DefaultTokens returns the invisible default pair.
func DefaultTokens() TokenPair {
	return TokenPair{Zero: DefaultZero, One: DefaultOne}
}

// Check reports whether the pair is usable.
func (tp TokenPair) Check() error {
	if tp.Zero == tp.One {
		return fmt.Errorf("%w: zero and one are both %q", ErrTokenPair, tp.Zero)
	}
	if !utf8.ValidRune(tp.Zero) || !utf8.ValidRune(tp.One) {
		return fmt.Errorf("%w: not a valid rune", ErrTokenPair)
	}
	return nil
}

// ToTokens maps each '0' digit to the zero marker and each '1' digit to
// the one marker, preserving order.
func (tp TokenPair) ToTokens(bits string) (string, error) {
	if err := tp.Check(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(bits) * utf8.UTFMax)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			b.WriteRune(tp.Zero)
		case '1':
			b.WriteRune(tp.One)
		default:
			return "", fmt.Errorf("%w: digit %q at index %d", ErrMalformedInput, bits[i], i)
		}
	}
	return b.String(), nil
}

// ToBits is the inverse of ToTokens. A rune that is neither marker yields
// ErrUnknownToken, which usually means the sequence was produced with a
// different pair.
func (tp TokenPair) ToBits(tokens string) (string, error) {
	if err := tp.Check(); err != nil {
		return "", err
	}
	var b strings.Builder
	i := 0
	for _, r := range tokens {
		switch r {
		case tp.Zero:
			b.WriteByte('0')
		case tp.One:
			b.WriteByte('1')
		default:
			return "", fmt.Errorf("%w: %q at rune %d", ErrUnknownToken, r, i)
		}
		i++
	}
	return b.String(), nil
}

// Extract keeps, in order, every marker rune of s and drops everything
// else. This is how a secret leaves a mixed text: selection depends only
// on rune identity, never on position.
func (tp TokenPair) Extract(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == tp.Zero || r == tp.One {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Count returns how many marker runes s holds.
func (tp TokenPair) Count(s string) int {
	n := 0
	for _, r := range s {
		if r == tp.Zero || r == tp.One {
			n++
		}
	}
	return n
}
