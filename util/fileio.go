/*
Package util carries the small shared helpers of the command line tool:
whole-file text I/O with a stdin/stdout convention, payload compression
and seed derivation.
*/
package util

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Stdio is the pseudo path selecting standard input or output.
const Stdio = "-"

// ReadText loads a whole text file, or stdin for "-", and verifies it is
// valid UTF-8 so later rune handling cannot silently mangle it.
func ReadText(path string) (string, error) {
	data, err := ReadBytes(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", displayName(path))
	}
	return string(data), nil
}

// ReadBytes loads a whole file, or stdin for "-", without interpreting
// the contents.
func ReadBytes(path string) ([]byte, error) {
	if path == Stdio {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

// WriteText stores text in a file, or on stdout for "-".
func WriteText(path, text string) error {
	return WriteBytes(path, []byte(text))
}

// WriteBytes stores raw data in a file, or on stdout for "-".
func WriteBytes(path string, data []byte) error {
	if path == Stdio {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func displayName(path string) string {
	if path == Stdio {
		return "stdin"
	}
	return path
}
