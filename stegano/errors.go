package stegano

import "errors"

/*
Errors reported by the encoding and mixing primitives. They come back
wrapped with context, so callers should match them with errors.Is.
*/
var (
	// ErrEncodingRange means a secret rune does not fit the single
	// 8-bit unit this scheme encodes per character. Wider input has to
	// go through the byte plane (EncodeBytes, HideBytes) instead.
	ErrEncodingRange = errors.New("stegano: rune outside 8-bit range")

	// ErrMalformedInput means a bit string has the wrong shape: a
	// digit other than '0' or '1', or a length that is not a whole
	// number of 8-bit units. On reveal it usually means the text was
	// damaged or was hidden with a different marker pair.
	ErrMalformedInput = errors.New("stegano: malformed bit string")

	// ErrUnknownToken means a token sequence holds a rune that is
	// neither the configured zero nor the configured one marker.
	ErrUnknownToken = errors.New("stegano: unknown token")

	// ErrInvariant means the mixer could not give every rune of the
	// hidden sequence its own slot and refused to overwrite data.
	ErrInvariant = errors.New("stegano: cannot place sequence without overlap")

	// ErrTokenPair means the zero and one markers are unusable: equal
	// to each other, or not valid runes.
	ErrTokenPair = errors.New("stegano: invalid token pair")

	// ErrAlphabet means carrier synthesis has no rune left to draw
	// once the markers are excluded from the alphabet.
	ErrAlphabet = errors.New("stegano: alphabet fully excluded by tokens")
)
