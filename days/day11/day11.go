// Package day11 solves "Dumbo Octopus": cascading flashes on an energy grid.
package day11

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Part1Steps is the number of steps counted by part 1.
const Part1Steps = 100

// flashAt is the energy level that triggers a flash.
const flashAt = 10

// MaxSteps bounds the search for a synchronised flash.
const MaxSteps = 1_000_000

func init() {
	puzzle.Register(11, 1, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(g, opts.StepsOr(Part1Steps)), nil
	})
	puzzle.Register(11, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(g)
	})
}

// Parse reads the energy grid.
func Parse(in []byte) (*grid.Grid[int], error) {
	g, err := grid.ParseDigits(parse.Text(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrMalformed, err)
	}
	return g, nil
}

// Step advances g in place by one step and returns how many octopuses flashed.
// Every level rises by one; any octopus above 9 flashes once, raising all
// eight neighbours, and flashed octopuses end the step at 0.
func Step(g *grid.Grid[int]) int {
	var queue []int
	for i := 0; i < g.Len(); i++ {
		v := g.AtIndex(i) + 1
		g.SetIndex(i, v)
		if v == flashAt {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		g.Neighbors(i, grid.Conn8, func(n int) {
			v := g.AtIndex(n) + 1
			g.SetIndex(n, v)
			if v == flashAt {
				queue = append(queue, n)
			}
		})
	}
	flashes := 0
	for i := 0; i < g.Len(); i++ {
		if g.AtIndex(i) >= flashAt {
			g.SetIndex(i, 0)
			flashes++
		}
	}
	return flashes
}

// Part1 counts flashes over the given number of steps. g is not modified.
func Part1(g *grid.Grid[int], steps int) int {
	g = g.Clone()
	total := 0
	for i := 0; i < steps; i++ {
		total += Step(g)
	}
	return total
}

// Part2 returns the first step on which every octopus flashes.
func Part2(g *grid.Grid[int]) (int, error) {
	g = g.Clone()
	for step := 1; step <= MaxSteps; step++ {
		if Step(g) == g.Len() {
			return step, nil
		}
	}
	return 0, fmt.Errorf("day11: no synchronised flash within %d steps", MaxSteps)
}
