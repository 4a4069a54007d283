package day20

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `..#.#..#####.#.#.#.###.##.....###.##.#..###.####..#####..#....#..#..##..###..######.###...####..#..#####..##..#.#####...##.#.#..#.##..#.#......#.###.######.###.####...#.##.##..#..#..#####.....#.#....###..#.##......#.....#..#..#..##..#...##.######.####.####.#.#...#.......#..#.#.#...####.##.#......#..#...##.#.##..#...##.#.##..###.#......#.#.......#.#.#.####.###.##...#.....####.#..#..#.##.#....##..#.####....##...##..#...#......#.#.......#.......##..####..#...#.#.#...##..#.#..###..#####........#..####......#..#

#..#.
#....
##..#
..#..
..###
`

func TestSample(t *testing.T) {
	for part, want := range map[int]int{1: 35, 2: 3351} {
		fn, err := puzzle.Lookup(20, part)
		require.NoError(t, err)
		got, err := fn(context.Background(), []byte(sample), puzzle.Default())
		require.NoError(t, err)
		require.Equal(t, want, got, "part %d", part)
	}
}

func TestIterationsAndRender(t *testing.T) {
	fn, err := puzzle.Lookup(20, 1)
	require.NoError(t, err)

	got, err := fn(context.Background(), []byte(sample), puzzle.Options{Iterations: 1, Render: true})
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		".##.##.",
		"#..#.#.",
		"##.#..#",
		"####..#",
		".#..##.",
		"..##..#",
		"...#.#.",
	}, "\n"), got)
}

// flipping lights every dark neighbourhood and darkens every lit one, so the
// background alternates between steps.
func flipping() *Algorithm {
	var a Algorithm
	for i := range a {
		// Output is the inverse of the centre pixel (bit 4).
		a[i] = uint8(1 - (i>>4)&1)
	}
	return &a
}

func TestBackgroundFlips(t *testing.T) {
	algo := flipping()
	_, img, err := Parse([]byte(sample))
	require.NoError(t, err)
	lit, err := img.Lit()
	require.NoError(t, err)
	require.Equal(t, 10, lit)

	once := algo.Enhance(img)
	require.Equal(t, uint8(1), once.Background)
	_, err = once.Lit()
	require.ErrorIs(t, err, ErrInfinite)

	twice := algo.Enhance(once)
	require.Equal(t, uint8(0), twice.Background)
	lit, err = twice.Lit()
	require.NoError(t, err)
	require.Equal(t, 10, lit)
	require.Equal(t, 9, twice.Pixels.Width)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse([]byte("..#\n\n#.\n.#\n"))
	require.ErrorIs(t, err, ErrBadAlgorithm)

	_, _, err = Parse([]byte(sample[:AlgorithmSize]))
	require.Error(t, err)
}
