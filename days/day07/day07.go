// Package day07 solves "The Treachery of Whales": aligning crab submarines
// at the cheapest horizontal position.
package day07

import (
	"context"
	"math"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// Cost is the fuel needed to move one crab a given distance.
type Cost func(distance int) int

// Linear costs one unit per step.
func Linear(d int) int { return d }

// Triangular costs 1 for the first step, 2 for the second, and so on.
func Triangular(d int) int { return xmath.Triangle(d) }

func init() {
	puzzle.Register(7, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		pos, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(pos), nil
	})
	puzzle.Register(7, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		pos, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(pos), nil
	})
}

// Parse reads the comma-separated positions.
func Parse(in []byte) ([]int, error) {
	pos, err := parse.Ints(parse.Text(in), ",")
	if err != nil {
		return nil, err
	}
	if len(pos) == 0 {
		return nil, parse.Malformed("no positions")
	}
	return pos, nil
}

// FuelCost is the total fuel to move every crab to target.
func FuelCost(positions []int, target int, cost Cost) int {
	total := 0
	for _, p := range positions {
		total += cost(xmath.AbsDiff(p, target))
	}
	return total
}

// Part1 aligns at the median, which minimises the sum of absolute distances.
func Part1(positions []int) int {
	return FuelCost(positions, xmath.Median(positions), Linear)
}

// Part2 aligns under triangular cost. The optimum lies within 1/2 of the mean,
// so only its floor and ceiling need checking.
func Part2(positions []int) int {
	mean := float64(xmath.Sum(positions...)) / float64(len(positions))
	lo, hi := int(math.Floor(mean)), int(math.Ceil(mean))
	return min(FuelCost(positions, lo, Triangular), FuelCost(positions, hi, Triangular))
}
