package stegano

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// pick returns, in order, the runes of s that occur in set.
func pick(s, set string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestMixPreservesBothOrders(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"short into long", "ABC", "abcdefghijkl"},
		{"long into short", "ABCDEFGHIJKL", "abc"},
		{"equal lengths", "ABCD", "abcd"},
		{"single rune", "A", "abcdefgh"},
		{"multibyte", "ΑΒΓ", "abcdefghijkl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				mixed, err := Mix(tt.a, tt.b, seed)
				if err != nil {
					t.Fatalf("Mix(seed=%d): %v", seed, err)
				}
				wantLen := utf8.RuneCountInString(tt.a) + utf8.RuneCountInString(tt.b)
				if n := utf8.RuneCountInString(mixed); n != wantLen {
					t.Fatalf("Mix(seed=%d) length = %d runes, want %d", seed, n, wantLen)
				}
				if got := pick(mixed, tt.a); got != tt.a {
					t.Fatalf("Mix(seed=%d) scrambled a: %q -> %q", seed, tt.a, got)
				}
				if got := pick(mixed, tt.b); got != tt.b {
					t.Fatalf("Mix(seed=%d) scrambled b: %q -> %q", seed, tt.b, got)
				}
			}
		})
	}
}

func TestMixEmpty(t *testing.T) {
	if got, err := Mix("", "carrier", 1); err != nil || got != "carrier" {
		t.Fatalf("Mix(\"\", carrier) = %q, %v; want carrier back", got, err)
	}
	if got, err := Mix("secret", "", 1); err != nil || got != "secret" {
		t.Fatalf("Mix(secret, \"\") = %q, %v; want secret back", got, err)
	}
	if got, err := Mix("", "", 1); err != nil || got != "" {
		t.Fatalf("Mix(\"\", \"\") = %q, %v; want empty", got, err)
	}
}

func TestMixCommutes(t *testing.T) {
	// The shorter side is scattered regardless of argument order, so
	// swapping the arguments must not change the result for a fixed
	// seed.
	x, err := Mix("ABC", "abcdefghijkl", 17)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	y, err := Mix("abcdefghijkl", "ABC", 17)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	if x != y {
		t.Fatalf("argument order changed the mix: %q vs %q", x, y)
	}
}

func TestMixDeterministic(t *testing.T) {
	a := strings.Repeat("X", 16)
	b := strings.Repeat("y", 64)

	first, err := Mix(a, b, 1234)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	second, err := Mix(a, b, 1234)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	if first != second {
		t.Fatal("same seed produced different mixes")
	}

	seen := map[string]bool{}
	for seed := int64(0); seed < 20; seed++ {
		m, err := Mix("ABCDEFGHIJKLMNOP", "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijkl", seed)
		if err != nil {
			t.Fatalf("Mix(seed=%d): %v", seed, err)
		}
		seen[m] = true
	}
	if len(seen) < 2 {
		t.Fatal("twenty seeds produced a single layout")
	}
}

func TestMixZeroWidthTokens(t *testing.T) {
	tp := DefaultTokens()
	tokens := strings.Repeat(string(tp.Zero), 4) + strings.Repeat(string(tp.One), 4)
	carrier := "an entirely visible sentence"

	mixed, err := Mix(tokens, carrier, 7)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	want := utf8.RuneCountInString(tokens) + utf8.RuneCountInString(carrier)
	if n := utf8.RuneCountInString(mixed); n != want {
		t.Fatalf("length = %d runes, want %d", n, want)
	}
	if got := tp.Extract(mixed); got != tokens {
		t.Fatalf("token subsequence = %q, want %q", got, tokens)
	}

	var visible strings.Builder
	for _, r := range mixed {
		if r != tp.Zero && r != tp.One {
			visible.WriteRune(r)
		}
	}
	if visible.String() != carrier {
		t.Fatalf("carrier subsequence = %q, want %q", visible.String(), carrier)
	}
}
