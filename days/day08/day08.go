// Package day08 solves "Seven Segment Search": recovering a scrambled
// seven-segment wiring from the ten unique digit patterns.
package day08

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Pattern is a set of lit segments a..g as a bit mask.
type Pattern uint8

// Len returns the number of lit segments.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Entry is one display: ten unique signal patterns and four output digits.
type Entry struct {
	Signals [10]Pattern
	Output  [4]Pattern
}

// signatures maps the sum of per-segment frequencies (over the ten canonical
// digits) to the digit. The sums are unique and survive any rewiring, since
// rewiring only renames segments.
var signatures = map[int]int{42: 0, 17: 1, 34: 2, 39: 3, 30: 4, 37: 5, 41: 6, 25: 7, 49: 8, 45: 9}

func init() {
	puzzle.Register(8, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		entries, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(entries), nil
	})
	puzzle.Register(8, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		entries, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(entries)
	})
}

// Parse reads "p0 ... p9 | o0 o1 o2 o3" lines.
func Parse(in []byte) ([]Entry, error) {
	var out []Entry
	for i, line := range parse.Lines(in) {
		left, right, err := parse.Cut(line, "|")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		sig, err := parse.Fields(left, 10)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		outs, err := parse.Fields(right, 4)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		var e Entry
		for j, s := range sig {
			if e.Signals[j], err = pattern(s); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		for j, s := range outs {
			if e.Output[j], err = pattern(s); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func pattern(s string) (Pattern, error) {
	var p Pattern
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, parse.Malformed("bad segment %q in %q", r, s)
		}
		p |= 1 << (r - 'a')
	}
	return p, nil
}

// Part1 counts output digits 1, 4, 7 and 8, which use a unique number of segments.
func Part1(entries []Entry) int {
	n := 0
	for _, e := range entries {
		for _, o := range e.Output {
			switch o.Len() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

// Part2 decodes every output value and sums them.
func Part2(entries []Entry) (int, error) {
	total := 0
	for i, e := range entries {
		v, err := e.Decode()
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}

// Decode returns the four-digit output value.
func (e Entry) Decode() (int, error) {
	var freq [7]int
	for _, p := range e.Signals {
		for s := 0; s < 7; s++ {
			if p&(1<<s) != 0 {
				freq[s]++
			}
		}
	}
	value := 0
	for _, o := range e.Output {
		sum := 0
		for s := 0; s < 7; s++ {
			if o&(1<<s) != 0 {
				sum += freq[s]
			}
		}
		d, ok := signatures[sum]
		if !ok {
			return 0, parse.Malformed("output %s matches no digit", o)
		}
		value = value*10 + d
	}
	return value, nil
}

// String renders the pattern as its segment letters.
func (p Pattern) String() string {
	var sb strings.Builder
	for s := 0; s < 7; s++ {
		if p&(1<<s) != 0 {
			sb.WriteByte(byte('a' + s))
		}
	}
	return sb.String()
}
