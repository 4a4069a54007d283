// Package day06 solves "Lanternfish": exponential population growth tracked
// as counts per timer value.
package day06

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// Default generation counts of the two parts.
const (
	Part1Days = 80
	Part2Days = 256
)

// Timers counts fish per internal timer value 0..8.
type Timers [9]int

func init() {
	for part, days := range map[int]int{1: Part1Days, 2: Part2Days} {
		puzzle.Register(6, part, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
			t, err := Parse(in)
			if err != nil {
				return nil, err
			}
			return Simulate(t, opts.StepsOr(days)), nil
		})
	}
}

// Parse reads the comma-separated timers.
func Parse(in []byte) (Timers, error) {
	var t Timers
	nums, err := parse.Ints(parse.Text(in), ",")
	if err != nil {
		return t, err
	}
	for _, n := range nums {
		if n < 0 || n > 8 {
			return t, parse.Malformed("timer %d out of range", n)
		}
		t[n]++
	}
	return t, nil
}

// Step advances the population by one day: every fish at 0 resets to 6 and
// spawns a new fish at 8.
func (t Timers) Step() Timers {
	var next Timers
	copy(next[:8], t[1:])
	next[6] += t[0]
	next[8] = t[0]
	return next
}

// Simulate returns the population size after days generations.
func Simulate(t Timers, days int) int {
	for i := 0; i < days; i++ {
		t = t.Step()
	}
	return xmath.Sum(t[:]...)
}
