package day22

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const small = `on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13
off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`

func TestSmallSample(t *testing.T) {
	steps, err := Parse([]byte(small))
	require.NoError(t, err)
	require.Len(t, steps, 4)

	want := []int{27, 46, 38, 39}
	for i, w := range want {
		assert.Equal(t, w, Lit(steps[:i+1], nil), "after step %d", i+1)
	}

	fn, err := puzzle.Lookup(22, 1)
	require.NoError(t, err)
	got, err := fn(context.Background(), []byte(small), puzzle.Default())
	require.NoError(t, err)
	require.Equal(t, 39, got)
}

const larger = `on x=-20..26,y=-36..17,z=-47..7
on x=-20..33,y=-21..23,z=-26..28
on x=-22..28,y=-29..23,z=-38..16
on x=-46..7,y=-6..46,z=-50..-1
on x=-49..1,y=-3..46,z=-24..28
on x=2..47,y=-22..22,z=-23..27
on x=-27..23,y=-28..26,z=-21..29
on x=-39..5,y=-6..47,z=-3..44
on x=-30..21,y=-8..43,z=-13..34
on x=-22..26,y=-27..20,z=-29..19
off x=-48..-32,y=26..41,z=-47..-37
on x=-12..35,y=6..50,z=-50..-2
off x=-48..-32,y=-32..-16,z=-15..-5
on x=-18..26,y=-33..15,z=-7..46
off x=-40..-22,y=-38..-28,z=23..41
on x=-16..35,y=-41..10,z=-47..6
off x=-32..-23,y=11..30,z=-14..3
on x=-49..-5,y=-3..45,z=-29..18
off x=18..30,y=-20..-8,z=-3..13
on x=-41..9,y=-7..43,z=-33..15
on x=-54112..-39298,y=-85059..-49293,z=-27449..7877
on x=967..23432,y=45373..81175,z=27513..53682
`

func TestLargerSample(t *testing.T) {
	want := map[int]puzzle.Answer{1: 590784, 2: 39769202357779}
	for part, w := range want {
		fn, err := puzzle.Lookup(22, part)
		require.NoError(t, err)
		got, err := fn(context.Background(), []byte(larger), puzzle.Default())
		require.NoError(t, err)
		require.Equal(t, w, got, "part %d", part)
	}

	// Only the last two steps reach outside the initialization region.
	steps, err := Parse([]byte(larger))
	require.NoError(t, err)
	require.Equal(t, 590784, Lit(steps[:20], nil))
}

func TestSubtract(t *testing.T) {
	a := Cuboid{Span{0, 3}, Span{0, 3}, Span{0, 3}}

	// Centre cube removed: 26 cubes in 6 pieces.
	parts := a.Subtract(Cuboid{Span{1, 2}, Span{1, 2}, Span{1, 2}})
	require.Len(t, parts, 6)
	total := 0
	for _, p := range parts {
		total += p.Volume()
	}
	require.Equal(t, 26, total)

	// Disjoint: unchanged.
	require.Equal(t, []Cuboid{a}, a.Subtract(Cuboid{Span{5, 6}, Span{0, 3}, Span{0, 3}}))

	// Fully covered: nothing left.
	require.Empty(t, a.Subtract(Cuboid{Span{-1, 4}, Span{-1, 4}, Span{-1, 4}}))
}

func TestClip(t *testing.T) {
	steps, err := Parse([]byte("on x=-54..-48,y=0..0,z=0..0\non x=1000..2000,y=0..0,z=0..0\n"))
	require.NoError(t, err)
	require.Equal(t, 3, Lit(steps, &InitRegion))
	require.Equal(t, 1008, Lit(steps, nil))
}

// TestAgainstVoxels compares Lit with a cube-by-cube simulation.
func TestAgainstVoxels(t *testing.T) {
	rng := rand.New(rand.NewPCG(22, 1))
	var sb strings.Builder
	for range 30 {
		mode := "on"
		if rng.IntN(3) == 0 {
			mode = "off"
		}
		var r [6]int
		for k := 0; k < 6; k += 2 {
			a, b := rng.IntN(20)-10, rng.IntN(20)-10
			r[k], r[k+1] = min(a, b), max(a, b)
		}
		fmt.Fprintf(&sb, "%s x=%d..%d,y=%d..%d,z=%d..%d\n", mode, r[0], r[1], r[2], r[3], r[4], r[5])
	}
	steps, err := Parse([]byte(sb.String()))
	require.NoError(t, err)

	type cube struct{ x, y, z int }
	on := make(map[cube]bool)
	for _, s := range steps {
		for x := s.X.Lo; x < s.X.Hi; x++ {
			for y := s.Y.Lo; y < s.Y.Hi; y++ {
				for z := s.Z.Lo; z < s.Z.Hi; z++ {
					if s.On {
						on[cube{x, y, z}] = true
					} else {
						delete(on, cube{x, y, z})
					}
				}
			}
		}
	}
	require.Equal(t, len(on), Lit(steps, nil))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"toggle x=1..2,y=1..2,z=1..2",
		"on x=2..1,y=1..2,z=1..2",
		"on x=1..2,y=1..2",
	} {
		_, err := Parse([]byte(in))
		require.ErrorIs(t, err, parse.ErrMalformed, in)
	}
}
