package util

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// Compress gzips a payload before hiding. Every hidden byte costs eight
// carrier tokens, so shrinking repetitive secrets first pays off quickly.
// Empty input passes through untouched.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress. Empty input passes through untouched.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}
	defer gz.Close()
	var out bytes.Buffer
	if _, err := io.Copy(&out, gz); err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}
	return out.Bytes(), nil
}
