// Package day09 solves "Smoke Basin": low points and basins of a height map.
package day09

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// Ridge is the height that separates basins.
const Ridge = 9

func init() {
	puzzle.Register(9, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(g), nil
	})
	puzzle.Register(9, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(g)
	})
}

// Parse reads the digit height map.
func Parse(in []byte) (*grid.Grid[int], error) {
	g, err := grid.ParseDigits(parse.Text(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrMalformed, err)
	}
	return g, nil
}

// LowPoints returns the indices of cells lower than all orthogonal neighbours.
func LowPoints(g *grid.Grid[int]) []int {
	var out []int
	for i := 0; i < g.Len(); i++ {
		h, low := g.AtIndex(i), true
		g.Neighbors(i, grid.Conn4, func(n int) {
			if g.AtIndex(n) <= h {
				low = false
			}
		})
		if low {
			out = append(out, i)
		}
	}
	return out
}

// Part1 sums 1 + height over all low points.
func Part1(g *grid.Grid[int]) int {
	risk := 0
	for _, i := range LowPoints(g) {
		risk += 1 + g.AtIndex(i)
	}
	return risk
}

// Part2 multiplies the sizes of the three largest basins.
func Part2(g *grid.Grid[int]) (int, error) {
	basins := g.Components(func(h int) bool { return h != Ridge }, grid.Conn4)
	if len(basins) < 3 {
		return 0, fmt.Errorf("%w: only %d basins", parse.ErrMalformed, len(basins))
	}
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = len(b)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return xmath.Product(sizes[:3]...), nil
}
