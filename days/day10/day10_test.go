package day10

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/parse"
)

const sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestPart1(t *testing.T) {
	got, err := Part1(parse.Lines([]byte(sample)))
	require.NoError(t, err)
	require.Equal(t, 26397, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(parse.Lines([]byte(sample)))
	require.NoError(t, err)
	require.Equal(t, 288957, got)
}

func TestCheck(t *testing.T) {
	r, err := Check("{([(<{}[<>[]}>{[]{[(<()>")
	require.NoError(t, err)
	require.Equal(t, '}', r.Illegal)

	r, err = Check("[({(<(())[]>[[{[]{<()<>>")
	require.NoError(t, err)
	require.Zero(t, r.Illegal)
	require.Equal(t, "}}]])})]", r.Missing)
	require.Equal(t, 288957, CompletionScore(r.Missing))

	_, err = Check("(x)")
	require.ErrorIs(t, err, parse.ErrMalformed)
}

func TestPart2_NoIncomplete(t *testing.T) {
	_, err := Part2([]string{"()", "(]"})
	require.ErrorIs(t, err, parse.ErrMalformed)
}
