// Package day01 solves "Sonar Sweep": counting depth increases.
package day01

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

func init() {
	puzzle.Register(1, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		depths, err := parse.IntLines(in)
		if err != nil {
			return nil, err
		}
		return Part1(depths), nil
	})
	puzzle.Register(1, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		depths, err := parse.IntLines(in)
		if err != nil {
			return nil, err
		}
		return Part2(depths), nil
	})
}

// Part1 counts measurements larger than the previous one.
func Part1(depths []int) int {
	return increases(depths, 1)
}

// Part2 counts increases of the three-measurement sliding window sum.
func Part2(depths []int) int {
	return increases(depths, 3)
}

// increases compares window sums of width w. Consecutive windows share all
// but their end points, so only depths[i] and depths[i-w] need comparing.
func increases(depths []int, w int) int {
	n := 0
	for i := w; i < len(depths); i++ {
		if depths[i] > depths[i-w] {
			n++
		}
	}
	return n
}

// WindowSums returns the sums of every w-wide window, in order.
func WindowSums(depths []int, w int) []int {
	if w <= 0 || len(depths) < w {
		return nil
	}
	out := make([]int, 0, len(depths)-w+1)
	for i := 0; i+w <= len(depths); i++ {
		out = append(out, xmath.Sum(depths[i:i+w]...))
	}
	return out
}
