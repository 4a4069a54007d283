// Package day12 solves "Passage Pathing": counting routes through a cave
// system where small caves may be visited only a limited number of times.
package day12

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/graph"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Cave names with special meaning.
const (
	Start = "start"
	End   = "end"
)

func init() {
	puzzle.Register(12, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(g)
	})
	puzzle.Register(12, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(g)
	})
}

// Small reports whether a cave is small (lower-case name).
func Small(id string) bool { return strings.ToLower(id) == id }

// Parse reads one "a-b" passage per line into an undirected graph.
func Parse(in []byte) (*graph.Graph, error) {
	g := graph.NewGraph()
	for i, line := range parse.Lines(in) {
		a, b, err := parse.Cut(line, "-")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", i+1, parse.ErrMalformed, err)
		}
	}
	return g, nil
}

// Part1 counts paths visiting each small cave at most once.
func Part1(g *graph.Graph) (int, error) {
	return graph.Walk(g, Start, End, graph.Once(Small))
}

// Part2 allows a single small cave other than start to be visited twice.
func Part2(g *graph.Graph) (int, error) {
	return graph.Walk(g, Start, End, graph.OnceWithRevisit(Small, Start, End))
}
