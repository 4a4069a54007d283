// Package parse holds the small text helpers every puzzle input goes through.
//
// All helpers accept the raw file contents, drop '\r' and trailing blank lines,
// and report bad input as ErrMalformed wrapped with the offending position.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed indicates input that does not match the expected format.
var ErrMalformed = errors.New("parse: malformed input")

// Malformed wraps ErrMalformed with a formatted message.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// Text normalises line endings and trims surrounding newlines.
func Text(input []byte) string {
	return strings.Trim(strings.ReplaceAll(string(input), "\r", ""), "\n")
}

// Lines splits input into lines. Empty input yields no lines.
func Lines(input []byte) []string {
	s := Text(input)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks splits input on blank lines, returning the lines of each block.
func Blocks(input []byte) [][]string {
	s := Text(input)
	if s == "" {
		return nil
	}
	var out [][]string
	for _, b := range strings.Split(s, "\n\n") {
		b = strings.Trim(b, "\n")
		if b == "" {
			continue
		}
		out = append(out, strings.Split(b, "\n"))
	}

	return out
}

// Int parses a decimal integer, allowing surrounding spaces and a leading sign.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("not an integer: %q", s)
	}

	return n, nil
}

// Ints parses a sep-separated list of integers. An empty sep splits on runs
// of whitespace.
func Ints(s, sep string) ([]int, error) {
	var parts []string
	if sep == "" {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(strings.TrimSpace(s), sep)
	}
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		n, err := Int(p)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// IntLines parses one integer per line.
func IntLines(input []byte) ([]int, error) {
	lines := Lines(input)
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := Int(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Digit returns the value of a single decimal digit.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, Malformed("not a digit: %q", r)
	}

	return int(r - '0'), nil
}

// Fields splits s on whitespace and checks the field count.
func Fields(s string, want int) ([]string, error) {
	f := strings.Fields(s)
	if len(f) != want {
		return nil, Malformed("want %d fields, got %d in %q", want, len(f), s)
	}

	return f, nil
}

// Cut splits s around the first sep and fails if sep is absent.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Malformed("missing %q in %q", sep, s)
	}

	return before, after, nil
}

// Scanf is fmt.Sscanf that wraps any failure in ErrMalformed.
func Scanf(s, format string, args ...any) error {
	if _, err := fmt.Sscanf(s, format, args...); err != nil {
		return Malformed("%q does not match %q: %v", s, format, err)
	}

	return nil
}
