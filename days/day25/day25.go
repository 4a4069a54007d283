// Package day25 solves "Sea Cucumber": two herds shuffling across a
// wrap-around grid until they jam.
package day25

import (
	"context"
	"errors"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Cell values.
const (
	Empty uint8 = iota
	East
	South
)

// MaxSteps bounds Settle on inputs that never jam.
const MaxSteps = 1_000_000

// ErrNeverSettles is returned when the herds are still moving after MaxSteps.
var ErrNeverSettles = errors.New("day25: herds never stop moving")

var glyphs = map[rune]uint8{'.': Empty, '>': East, 'v': South}

func init() {
	puzzle.Register(25, 1, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		g, err := grid.ParseMapped(parse.Text(in), grid.Glyphs(glyphs))
		if err != nil {
			return nil, err
		}
		if opts.Iterations > 0 {
			for range opts.Iterations {
				Step(g)
			}
			return Render(g), nil
		}
		n, err := Settle(ctx, g)
		if err != nil {
			return nil, err
		}
		if opts.Render {
			return Render(g), nil
		}
		return n, nil
	})
}

// Step moves the east-facing herd, then the south-facing herd, each all at
// once, and returns how many sea cucumbers moved.
func Step(g *grid.Grid[uint8]) int {
	return shift(g, East, 1, 0) + shift(g, South, 0, 1)
}

func shift(g *grid.Grid[uint8], herd uint8, dx, dy int) int {
	var ready []int
	for i, v := range g.Values() {
		if v != herd {
			continue
		}
		x, y := g.Coordinate(i)
		if g.At((x+dx)%g.Width, (y+dy)%g.Height) == Empty {
			ready = append(ready, i)
		}
	}
	for _, i := range ready {
		x, y := g.Coordinate(i)
		g.SetIndex(i, Empty)
		g.Set((x+dx)%g.Width, (y+dy)%g.Height, herd)
	}
	return len(ready)
}

// Settle steps g in place until nothing moves and returns the number of
// the first step on which no sea cucumber moved.
func Settle(ctx context.Context, g *grid.Grid[uint8]) (int, error) {
	for n := 1; n <= MaxSteps; n++ {
		if Step(g) == 0 {
			return n, nil
		}
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}
	return 0, ErrNeverSettles
}

// Render draws g with the puzzle's glyphs.
func Render(g *grid.Grid[uint8]) string {
	return g.Render(func(v uint8) byte {
		switch v {
		case East:
			return '>'
		case South:
			return 'v'
		}
		return '.'
	})
}
