// Package day14 solves "Extended Polymerization": pair insertion tracked as
// counts per adjacent pair.
package day14

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// Default step counts of the two parts.
const (
	Part1Steps = 10
	Part2Steps = 40
)

// Pair is two adjacent elements.
type Pair [2]byte

// Polymer is the template plus the insertion rules.
type Polymer struct {
	Template string
	Rules    map[Pair]byte
}

func init() {
	for part, steps := range map[int]int{1: Part1Steps, 2: Part2Steps} {
		puzzle.Register(14, part, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
			p, err := Parse(in)
			if err != nil {
				return nil, err
			}
			return p.Spread(opts.StepsOr(steps))
		})
	}
}

// Parse reads the template, a blank line, then "AB -> C" rules.
func Parse(in []byte) (*Polymer, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 || len(blocks[0][0]) < 1 {
		return nil, parse.Malformed("want a template line and a block of rules")
	}
	p := &Polymer{Template: strings.TrimSpace(blocks[0][0]), Rules: make(map[Pair]byte, len(blocks[1]))}
	for i, line := range blocks[1] {
		lhs, rhs, err := parse.Cut(line, " -> ")
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		if len(lhs) != 2 || len(rhs) != 1 {
			return nil, parse.Malformed("rule %d: %q", i+1, line)
		}
		p.Rules[Pair{lhs[0], lhs[1]}] = rhs[0]
	}
	return p, nil
}

// Counts runs steps insertion rounds and returns the count of every element.
// Only pair counts are tracked; each element is counted as the first member
// of its pairs, plus the template's last element, which never changes.
func (p *Polymer) Counts(steps int) map[byte]int {
	pairs := make(map[Pair]int)
	for i := 0; i+1 < len(p.Template); i++ {
		pairs[Pair{p.Template[i], p.Template[i+1]}]++
	}
	for s := 0; s < steps; s++ {
		next := make(map[Pair]int, len(pairs))
		for pr, n := range pairs {
			if c, ok := p.Rules[pr]; ok {
				next[Pair{pr[0], c}] += n
				next[Pair{c, pr[1]}] += n
			} else {
				next[pr] += n
			}
		}
		pairs = next
	}
	counts := map[byte]int{p.Template[len(p.Template)-1]: 1}
	for pr, n := range pairs {
		counts[pr[0]] += n
	}
	return counts
}

// Spread returns the most common minus the least common element quantity
// after steps rounds.
func (p *Polymer) Spread(steps int) (int, error) {
	counts := p.Counts(steps)
	vals := make([]int, 0, len(counts))
	for _, n := range counts {
		vals = append(vals, n)
	}
	lo, hi := xmath.MinMax(vals)
	return hi - lo, nil
}
