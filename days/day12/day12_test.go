package day12

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/graph"
	"github.com/katalvlaran/aoc2021/parse"
)

const small = `start-A
start-b
A-c
A-b
b-d
A-end
b-end
`

const medium = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`

const large = `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`

func TestPaths(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		p1, p2 int
	}{
		{"Small", small, 10, 36},
		{"Medium", medium, 19, 103},
		{"Large", large, 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse([]byte(tc.input))
			require.NoError(t, err)
			p1, err := Part1(g)
			require.NoError(t, err)
			require.Equal(t, tc.p1, p1)
			p2, err := Part2(g)
			require.NoError(t, err)
			require.Equal(t, tc.p2, p2)
		})
	}
}

func TestErrors(t *testing.T) {
	_, err := Parse([]byte("start-A\nAend\n"))
	require.ErrorIs(t, err, parse.ErrMalformed)
	_, err = Parse([]byte("start-\n"))
	require.ErrorIs(t, err, parse.ErrMalformed)

	g, err := Parse([]byte("start-A\n"))
	require.NoError(t, err)
	_, err = Part1(g)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}
