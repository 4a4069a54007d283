// Package day10 solves "Syntax Scoring": finding corrupted and incomplete
// bracket chunks.
package day10

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

var (
	closer = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completeScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// Result classifies one line.
type Result struct {
	// Illegal is the first unexpected closer, or 0 if the line is not corrupted.
	Illegal rune
	// Missing is the closing sequence that completes an incomplete line.
	Missing string
}

func init() {
	puzzle.Register(10, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		return Part1(parse.Lines(in))
	})
	puzzle.Register(10, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		return Part2(parse.Lines(in))
	})
}

// Check runs the bracket stack over line.
func Check(line string) (Result, error) {
	var stack []rune
	for _, r := range line {
		if c, ok := closer[r]; ok {
			stack = append(stack, c)
			continue
		}
		if _, ok := corruptScore[r]; !ok {
			return Result{}, parse.Malformed("unexpected character %q", r)
		}
		if len(stack) == 0 || stack[len(stack)-1] != r {
			return Result{Illegal: r}, nil
		}
		stack = stack[:len(stack)-1]
	}
	missing := make([]rune, len(stack))
	for i := range stack {
		missing[i] = stack[len(stack)-1-i]
	}
	return Result{Missing: string(missing)}, nil
}

// CompletionScore folds the missing closers: score = score*5 + value.
func CompletionScore(missing string) int {
	s := 0
	for _, r := range missing {
		s = s*5 + completeScore[r]
	}
	return s
}

// Part1 sums the scores of the first illegal character on corrupted lines.
func Part1(lines []string) (int, error) {
	total := 0
	for i, l := range lines {
		r, err := Check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += corruptScore[r.Illegal]
	}
	return total, nil
}

// Part2 returns the median completion score of the incomplete lines.
func Part2(lines []string) (int, error) {
	var scores []int
	for i, l := range lines {
		r, err := Check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if r.Illegal == 0 && r.Missing != "" {
			scores = append(scores, CompletionScore(r.Missing))
		}
	}
	if len(scores) == 0 {
		return 0, parse.Malformed("no incomplete lines")
	}
	return xmath.Median(scores), nil
}
