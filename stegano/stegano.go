/*
Package stegano hides one text inside another. A secret becomes a bit
string with 8 bits per rune, the bits become a pair of marker runes, and
the markers are scattered through carrier text without disturbing the
relative order of either side. Revealing filters the markers back out of
the mixed text and decodes them. With the default zero-width markers the
result renders exactly like the carrier.

The package does no I/O, never reads the clock and never touches the
global rand source. Every randomized operation takes an explicit seed and
is reproducible: equal inputs and seeds give byte-identical output.

This is obscurity, not secrecy. Anyone who knows, or guesses, the marker
pair can reveal the secret; encrypt the payload first if that matters.
*/
package stegano

// Hide conceals secret inside carrier using the given marker pair, with
// mixSeed driving where the markers land. The carrier must not already
// contain either marker; Reveal keeps every marker it sees.
func Hide(secret, carrier string, tokens TokenPair, mixSeed int64) (string, error) {
	if err := tokens.Check(); err != nil {
		return "", err
	}
	bits, err := EncodeText(secret)
	if err != nil {
		return "", err
	}
	obf, err := tokens.ToTokens(bits)
	if err != nil {
		return "", err
	}
	return Mix(obf, carrier, mixSeed)
}

// HideSynthetic is Hide with a generated carrier: DefaultCarrierFactor
// runes of DefaultAlphabet filler per secret token, drawn with
// carrierSeed. Useful when there is no plausible cover text at hand.
func HideSynthetic(secret string, tokens TokenPair, carrierSeed, mixSeed int64) (string, error) {
	if err := tokens.Check(); err != nil {
		return "", err
	}
	bits, err := EncodeText(secret)
	if err != nil {
		return "", err
	}
	obf, err := tokens.ToTokens(bits)
	if err != nil {
		return "", err
	}
	carrier, err := Synthesizer{}.Generate(DefaultCarrierFactor*len(bits), tokens, carrierSeed)
	if err != nil {
		return "", err
	}
	return Mix(obf, carrier, mixSeed)
}

// Reveal recovers the secret hidden in mixed text: extract the markers,
// map them back to bits, decode the bits. A marker pair that differs from
// the one used to hide surfaces as ErrMalformedInput or as garbage text.
func Reveal(mixed string, tokens TokenPair) (string, error) {
	if err := tokens.Check(); err != nil {
		return "", err
	}
	bits, err := tokens.ToBits(tokens.Extract(mixed))
	if err != nil {
		return "", err
	}
	return DecodeText(bits)
}

// HideBytes conceals a raw byte payload. Every byte value encodes, so
// compressed or otherwise binary secrets round-trip unmodified.
func HideBytes(secret []byte, carrier string, tokens TokenPair, mixSeed int64) (string, error) {
	if err := tokens.Check(); err != nil {
		return "", err
	}
	obf, err := tokens.ToTokens(EncodeBytes(secret))
	if err != nil {
		return "", err
	}
	return Mix(obf, carrier, mixSeed)
}

// HideBytesSynthetic is HideBytes with a generated carrier, sized like
// HideSynthetic.
func HideBytesSynthetic(secret []byte, tokens TokenPair, carrierSeed, mixSeed int64) (string, error) {
	if err := tokens.Check(); err != nil {
		return "", err
	}
	bits := EncodeBytes(secret)
	obf, err := tokens.ToTokens(bits)
	if err != nil {
		return "", err
	}
	carrier, err := Synthesizer{}.Generate(DefaultCarrierFactor*len(bits), tokens, carrierSeed)
	if err != nil {
		return "", err
	}
	return Mix(obf, carrier, mixSeed)
}

// RevealBytes recovers a byte payload hidden with HideBytes.
func RevealBytes(mixed string, tokens TokenPair) ([]byte, error) {
	if err := tokens.Check(); err != nil {
		return nil, err
	}
	bits, err := tokens.ToBits(tokens.Extract(mixed))
	if err != nil {
		return nil, err
	}
	return DecodeBytes(bits)
}
