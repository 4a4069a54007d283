package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = "3,4,3,1,2\n"

func TestSimulate(t *testing.T) {
	timers, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 26, Simulate(timers, 18))
	require.Equal(t, 5934, Simulate(timers, Part1Days))
	require.Equal(t, 26984457539, Simulate(timers, Part2Days))
}

func TestStep(t *testing.T) {
	timers, err := Parse([]byte(sample))
	require.NoError(t, err)
	// 3,4,3,1,2 -> 2,3,2,0,1 -> 1,2,1,6,0,8
	got := timers.Step().Step()
	require.Equal(t, Timers{1, 2, 1, 0, 0, 0, 1, 0, 1}, got)
}

func TestIterationsOverride(t *testing.T) {
	fn, err := puzzle.Lookup(6, 1)
	require.NoError(t, err)
	got, err := fn(context.Background(), []byte(sample), puzzle.Options{Iterations: 18})
	require.NoError(t, err)
	require.Equal(t, 26, got)
}

func TestErrors(t *testing.T) {
	_, err := Parse([]byte("3,9\n"))
	require.ErrorIs(t, err, parse.ErrMalformed)
	_, err = Parse([]byte("3,,1\n"))
	require.ErrorIs(t, err, parse.ErrMalformed)
}
