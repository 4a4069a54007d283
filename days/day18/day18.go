// Package day18 solves "Snailfish": adding and reducing nested pairs.
package day18

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/workers"
	"github.com/katalvlaran/aoc2021/xmath"
)

func init() {
	puzzle.Register(18, 1, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		nums, err := ParseAll(in)
		if err != nil {
			return nil, err
		}
		sum := Sum(nums)
		if opts.Render {
			return sum.String(), nil
		}
		return sum.Magnitude(), nil
	})
	puzzle.Register(18, 2, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		nums, err := ParseAll(in)
		if err != nil {
			return nil, err
		}
		return LargestPair(ctx, nums, opts.WorkerCount())
	})
}

// ParseAll reads one number per line.
func ParseAll(in []byte) ([]Number, error) {
	lines := parse.Lines(in)
	if len(lines) == 0 {
		return nil, parse.Malformed("no snailfish numbers")
	}
	nums := make([]Number, len(lines))
	for i, l := range lines {
		n, err := Parse(l)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

// Sum folds Add over nums from left to right.
func Sum(nums []Number) Number {
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = Add(acc, n)
	}
	return acc
}

// LargestPair returns the largest magnitude of a+b over ordered pairs of
// distinct numbers. Addition is not commutative, so both orders are tried.
// Left operands are split into n contiguous ranges, one per worker.
func LargestPair(ctx context.Context, nums []Number, n int) (int, error) {
	best, err := workers.Map(ctx, n, workers.Chunks(len(nums), n), func(_ context.Context, r [2]int) (int, error) {
		m := 0
		for i := r[0]; i < r[1]; i++ {
			for j := range nums {
				if i != j {
					m = max(m, Add(nums[i], nums[j]).Magnitude())
				}
			}
		}
		return m, nil
	})
	if err != nil {
		return 0, err
	}
	_, hi := xmath.MinMax(best)
	return hi, nil
}
