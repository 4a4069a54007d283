package day25

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const sample = `v...>>.vv>
.vv>>.vv..
>>.>v>...v
>>v>>.>.v.
v>v.vv.v..
>.>>..v...
.vv..>.>v.
v.v..>>v.v
....v..v.>
`

func parseGrid(t *testing.T, s string) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.ParseMapped(s, grid.Glyphs(glyphs))
	require.NoError(t, err)
	return g
}

func TestStepLine(t *testing.T) {
	g := parseGrid(t, "...>>>>>...")
	require.Equal(t, 1, Step(g))
	require.Equal(t, "...>>>>.>..", Render(g))
	require.Equal(t, 2, Step(g))
	require.Equal(t, "...>>>.>.>.", Render(g))
}

func TestEastBeforeSouth(t *testing.T) {
	g := parseGrid(t, "..........\n.>v....v..\n.......>..\n..........")
	Step(g)
	require.Equal(t, strings.Join([]string{
		"..........",
		".>........",
		"..v....v>.",
		"..........",
	}, "\n"), Render(g))
}

func TestWrap(t *testing.T) {
	g := parseGrid(t, "..>\nv..\n...")
	Step(g)
	require.Equal(t, ">..\n...\nv..", Render(g))
}

func TestSettle(t *testing.T) {
	g := parseGrid(t, sample)
	n, err := Settle(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 58, n)
	require.Equal(t, strings.Join([]string{
		"..>>v>vv..",
		"..v.>>vv..",
		"..>>v>>vv.",
		"..>>>>>vv.",
		"v......>vv",
		"v>v....>>v",
		"vvv.....>>",
		">vv......>",
		".>v.vv.v..",
	}, "\n"), Render(g))
}

func TestRegistered(t *testing.T) {
	fn, err := puzzle.Lookup(25, 1)
	require.NoError(t, err)

	got, err := fn(context.Background(), []byte(sample), puzzle.Default())
	require.NoError(t, err)
	require.Equal(t, 58, got)

	got, err = fn(context.Background(), []byte("...>>>>>..."), puzzle.Options{Iterations: 2})
	require.NoError(t, err)
	require.Equal(t, "...>>>.>.>.", got)

	_, err = puzzle.Lookup(25, 2)
	require.ErrorIs(t, err, puzzle.ErrNotRegistered)
}
