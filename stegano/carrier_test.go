package stegano

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerate(t *testing.T) {
	tp := TokenPair{Zero: 'z', One: 'o'}

	got, err := Synthesizer{}.Generate(128, tp, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := utf8.RuneCountInString(got); n != 128 {
		t.Fatalf("Generate length = %d runes, want 128", n)
	}
	for _, r := range got {
		if r == 'z' || r == 'o' {
			t.Fatalf("Generate produced marker %q", r)
		}
		if !strings.ContainsRune(string(DefaultAlphabet), r) {
			t.Fatalf("Generate produced %q outside the alphabet", r)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tp := DefaultTokens()
	a, err := Synthesizer{}.Generate(64, tp, 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Synthesizer{}.Generate(64, tp, 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a != b {
		t.Fatal("same seed produced different carriers")
	}

	seen := map[string]bool{a: true}
	for seed := int64(0); seed < 20; seed++ {
		c, err := Synthesizer{}.Generate(64, tp, seed)
		if err != nil {
			t.Fatalf("Generate(seed=%d): %v", seed, err)
		}
		seen[c] = true
	}
	if len(seen) < 2 {
		t.Fatal("twenty seeds produced a single carrier")
	}
}

func TestGenerateCustomAlphabet(t *testing.T) {
	tp := TokenPair{Zero: 'z', One: 'o'}
	sy := Synthesizer{Alphabet: []rune("abz")}
	got, err := sy.Generate(100, tp, 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range got {
		if r != 'a' && r != 'b' {
			t.Fatalf("Generate produced %q, want only a or b", r)
		}
	}

	greek := Synthesizer{Alphabet: []rune("αβγδ")}
	s, err := greek.Generate(50, DefaultTokens(), 11)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := utf8.RuneCountInString(s); n != 50 {
		t.Fatalf("Generate length = %d runes, want 50", n)
	}
}

func TestGenerateExcludedAlphabet(t *testing.T) {
	tp := TokenPair{Zero: 'z', One: 'o'}
	_, err := Synthesizer{Alphabet: []rune("zo")}.Generate(10, tp, 1)
	if !errors.Is(err, ErrAlphabet) {
		t.Fatalf("err = %v, want ErrAlphabet", err)
	}
}

func TestGenerateZero(t *testing.T) {
	got, err := Synthesizer{}.Generate(0, DefaultTokens(), 5)
	if err != nil || got != "" {
		t.Fatalf("Generate(0) = %q, %v; want empty, nil", got, err)
	}
}

func TestGrowCarrier(t *testing.T) {
	tp := TokenPair{Zero: 'z', One: 'o'}

	grown, err := GrowCarrier("abc", tp, 16, nil, 9)
	if err != nil {
		t.Fatalf("GrowCarrier: %v", err)
	}
	if n := utf8.RuneCountInString(grown); n != 16 {
		t.Fatalf("grown length = %d runes, want 16", n)
	}
	if !strings.HasPrefix(grown, "abc") {
		t.Fatalf("grown carrier %q does not keep the original prefix", grown)
	}

	same, err := GrowCarrier("long enough already", tp, 5, nil, 9)
	if err != nil {
		t.Fatalf("GrowCarrier: %v", err)
	}
	if same != "long enough already" {
		t.Fatalf("GrowCarrier touched a carrier that was long enough: %q", same)
	}
}
