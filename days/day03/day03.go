// Package day03 solves "Binary Diagnostic": bit-column majority votes over a
// report of equal-width binary numbers.
package day03

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(3, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(g), nil
	})
	puzzle.Register(3, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(g)
	})
}

var bits = grid.Glyphs(map[rune]uint8{'0': 0, '1': 1})

// Parse reads the report as a grid with one number per row.
func Parse(in []byte) (*grid.Grid[uint8], error) {
	g, err := grid.ParseMapped(parse.Text(in), bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrMalformed, err)
	}
	return g, nil
}

// Part1 returns gamma × epsilon, where gamma takes the most common bit of
// every column and epsilon is its complement.
func Part1(g *grid.Grid[uint8]) int {
	var gamma, epsilon int
	for x := 0; x < g.Width; x++ {
		ones := countOnes(g.Column(x))
		gamma <<= 1
		epsilon <<= 1
		if 2*ones >= g.Height {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon
}

// Part2 returns the oxygen generator rating × the CO2 scrubber rating.
func Part2(g *grid.Grid[uint8]) (int, error) {
	oxygen, err := rating(g, true)
	if err != nil {
		return 0, err
	}
	co2, err := rating(g, false)
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}

// rating filters rows column by column until one remains. With majority the
// most common bit is kept (ties keep 1); otherwise the least common (ties
// keep 0).
func rating(g *grid.Grid[uint8], majority bool) (int, error) {
	rows := make([][]uint8, g.Height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	for x := 0; x < g.Width && len(rows) > 1; x++ {
		ones := 0
		for _, r := range rows {
			ones += int(r[x])
		}
		zeros := len(rows) - ones
		var keep uint8
		if majority && ones >= zeros || !majority && ones < zeros {
			keep = 1
		}
		kept := rows[:0:0]
		for _, r := range rows {
			if r[x] == keep {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	if len(rows) != 1 {
		return 0, fmt.Errorf("%w: %d candidates remain", parse.ErrMalformed, len(rows))
	}
	return toInt(rows[0]), nil
}

func countOnes(col []uint8) int {
	n := 0
	for _, b := range col {
		n += int(b)
	}
	return n
}

func toInt(row []uint8) int {
	v := 0
	for _, b := range row {
		v = v<<1 | int(b)
	}
	return v
}
