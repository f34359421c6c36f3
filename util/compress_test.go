package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("short"),
		[]byte(strings.Repeat("a very repetitive secret. ", 100)),
		{0x00, 0xFF, 0x13, 0x37, 0x00},
	}
	for _, p := range payloads {
		packed, err := Compress(p)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		back, err := Decompress(packed)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(back, p) {
			t.Fatalf("round trip mismatch for %d bytes", len(p))
		}
	}
}

func TestCompressShrinksRepetitiveInput(t *testing.T) {
	p := []byte(strings.Repeat("the same words again and again. ", 200))
	packed, err := Compress(p)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(packed) >= len(p) {
		t.Fatalf("packed %d bytes, original %d", len(packed), len(p))
	}
}

func TestCompressEmpty(t *testing.T) {
	packed, err := Compress(nil)
	if err != nil || len(packed) != 0 {
		t.Fatalf("Compress(nil) = %v, %v; want empty, nil", packed, err)
	}
	back, err := Decompress(nil)
	if err != nil || len(back) != 0 {
		t.Fatalf("Decompress(nil) = %v, %v; want empty, nil", back, err)
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := Decompress([]byte("not gzip at all")); err == nil {
		t.Fatal("Decompress accepted garbage")
	}
}
