package stegano

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// DefaultAlphabet is the draw set for synthesized carriers.
var DefaultAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

// DefaultCarrierFactor sizes synthesized carriers at 16 carrier runes per
// secret token, which keeps the hidden sequence sparse.
const DefaultCarrierFactor = 16

/*
Synthesizer builds pseudo-random filler text for callers that have no real
carrier at hand. The zero value draws from DefaultAlphabet. Output is a
pure function of (n, tokens, alphabet, seed): equal inputs give equal
text, so a synthesized carrier can be regenerated from its seed alone.
*/
type Synthesizer struct {
	// Alphabet is the rune set to draw from. Empty means
	// DefaultAlphabet.
	Alphabet []rune
}

/*
Generate returns n runes drawn uniformly from the alphabet using a
generator seeded with seed. Neither marker rune ever appears in the
output: a draw that collides with one is simply redrawn, so the carrier
can never corrupt an embedded secret. If excluding the markers empties the
alphabet the draw could not terminate, and ErrAlphabet is returned
instead.
*/
func (sy Synthesizer) Generate(n int, tokens TokenPair, seed int64) (string, error) {
	alphabet := sy.Alphabet
	if len(alphabet) == 0 {
		alphabet = DefaultAlphabet
	}
	free := 0
	for _, r := range alphabet {
		if r != tokens.Zero && r != tokens.One {
			free++
		}
	}
	if free == 0 {
		return "", fmt.Errorf("%w: %q", ErrAlphabet, string(alphabet))
	}
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < n; i++ {
		r := alphabet[rng.Intn(len(alphabet))]
		for r == tokens.Zero || r == tokens.One {
			r = alphabet[rng.Intn(len(alphabet))]
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

/*
GrowCarrier pads carrier with synthesized filler until it holds at least
want runes. The original text stays untouched as a prefix of the result;
a carrier that is already long enough comes back unchanged. A nil or
empty alphabet means DefaultAlphabet.
*/
func GrowCarrier(carrier string, tokens TokenPair, want int, alphabet []rune, seed int64) (string, error) {
	have := utf8.RuneCountInString(carrier)
	if have >= want {
		return carrier, nil
	}
	extra, err := Synthesizer{Alphabet: alphabet}.Generate(want-have, tokens, seed)
	if err != nil {
		return "", err
	}
	return carrier + extra, nil
}
