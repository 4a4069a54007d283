// Package day15 solves "Chiton": the lowest total risk path across a cave.
package day15

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Tiles is how many times the map repeats in each direction for part 2.
const Tiles = 5

func init() {
	puzzle.Register(15, 1, func(ctx context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return LowestRisk(ctx, g)
	})
	puzzle.Register(15, 2, func(ctx context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return LowestRisk(ctx, Expand(g, Tiles))
	})
}

// Parse reads the risk map.
func Parse(in []byte) (*grid.Grid[int], error) {
	g, err := grid.ParseDigits(parse.Text(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrMalformed, err)
	}
	return g, nil
}

// Expand tiles g n×n times; each tile step right or down adds one to every
// risk, wrapping 9 back to 1.
func Expand(g *grid.Grid[int], n int) *grid.Grid[int] {
	return g.Tile(n, n, func(v, tx, ty int) int {
		return (v+tx+ty-1)%9 + 1
	})
}

// LowestRisk returns the minimal sum of entered cells from the top-left to
// the bottom-right corner. The starting cell is not entered, so it does not count.
func LowestRisk(ctx context.Context, g *grid.Grid[int]) (int, error) {
	target := g.Len() - 1
	next := func(i int, emit func(int, int64)) {
		g.Neighbors(i, grid.Conn4, func(n int) {
			emit(n, int64(g.AtIndex(n)))
		})
	}
	res, err := dijkstra.Search(0, next,
		dijkstra.WithTarget(func(i int) bool { return i == target }),
		dijkstra.WithContext[int](ctx),
	)
	if err != nil {
		return 0, err
	}
	return int(res.Distance), nil
}
