package util

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

/*
DeriveSeed stretches a passphrase into a reproducible 64-bit seed. The
purpose string separates the independent streams derived from one phrase,
so "carrier" and "mix" seeds never coincide by accident. Same phrase and
purpose, same seed, on any machine.
*/
func DeriveSeed(phrase, purpose string) int64 {
	r := hkdf.New(sha256.New, []byte(phrase), nil, []byte("sneaky/"+purpose))
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		// Eight bytes is far below the HKDF output limit.
		panic(err)
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}
