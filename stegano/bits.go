package stegano

import (
	"fmt"
	"strconv"
	"strings"
)

// BitsPerUnit is the width of one encoded character: secrets are streams
// of 8-bit units, most significant bit first.
const BitsPerUnit = 8

/*
EncodeRune returns the binary representation of r as a string of '0' and
'1' digits, left padded with zeros to exactly 8 digits. Only runes up to
U+00FF fit; anything wider yields ErrEncodingRange so no character is ever
silently truncated.
*/
func EncodeRune(r rune) (string, error) {
	if r < 0 || r > 0xFF {
		return "", fmt.Errorf("%w: %q (U+%04X)", ErrEncodingRange, r, r)
	}
	bits := strconv.FormatUint(uint64(r), 2)
	return strings.Repeat("0", BitsPerUnit-len(bits)) + bits, nil
}

// DecodeRune interprets an 8-digit bit string as one code point.
func DecodeRune(bits string) (rune, error) {
	if len(bits) != BitsPerUnit {
		return 0, fmt.Errorf("%w: got %d digits, want %d", ErrMalformedInput, len(bits), BitsPerUnit)
	}
	n, err := strconv.ParseUint(bits, 2, BitsPerUnit)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, bits)
	}
	return rune(n), nil
}

// EncodeText encodes every rune of s in order, producing 8 digits per
// rune. The empty string encodes to the empty bit string.
func EncodeText(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * BitsPerUnit)
	for _, r := range s {
		bits, err := EncodeRune(r)
		if err != nil {
			return "", err
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}

// DecodeText rebuilds the text a bit string encodes. The length must be a
// whole number of 8-digit units.
func DecodeText(bits string) (string, error) {
	if len(bits)%BitsPerUnit != 0 {
		return "", fmt.Errorf("%w: %d digits is not a whole number of %d-bit units",
			ErrMalformedInput, len(bits), BitsPerUnit)
	}
	var b strings.Builder
	for i := 0; i < len(bits); i += BitsPerUnit {
		r, err := DecodeRune(bits[i : i+BitsPerUnit])
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// EncodeBytes is the byte-plane twin of EncodeText. Every byte value fits
// in one unit, so arbitrary binary payloads encode without error.
func EncodeBytes(p []byte) string {
	var b strings.Builder
	b.Grow(len(p) * BitsPerUnit)
	for _, c := range p {
		bits := strconv.FormatUint(uint64(c), 2)
		b.WriteString(strings.Repeat("0", BitsPerUnit-len(bits)))
		b.WriteString(bits)
	}
	return b.String()
}

// DecodeBytes rebuilds the bytes a bit string encodes.
func DecodeBytes(bits string) ([]byte, error) {
	if len(bits)%BitsPerUnit != 0 {
		return nil, fmt.Errorf("%w: %d digits is not a whole number of %d-bit units",
			ErrMalformedInput, len(bits), BitsPerUnit)
	}
	out := make([]byte, 0, len(bits)/BitsPerUnit)
	for i := 0; i < len(bits); i += BitsPerUnit {
		n, err := strconv.ParseUint(bits[i:i+BitsPerUnit], 2, BitsPerUnit)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedInput, bits[i:i+BitsPerUnit])
		}
		out = append(out, byte(n))
	}
	return out, nil
}
