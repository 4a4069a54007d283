// Package day23 solves "Amphipod": the least energy needed to sort
// amphipods into their side rooms, found with a Dijkstra search over
// burrow states.
package day23

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Folded holds the two rows hidden in the folded part of the diagram.
var Folded = []string{"DCBA", "DBAC"}

func init() {
	puzzle.Register(23, 1, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		b, err := ParseBurrow(parse.Lines(in))
		if err != nil {
			return nil, err
		}
		return solve(ctx, b, opts.Render)
	})
	puzzle.Register(23, 2, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		b, err := ParseBurrow(parse.Lines(in))
		if err != nil {
			return nil, err
		}
		if b, err = b.Unfold(Folded...); err != nil {
			return nil, err
		}
		return solve(ctx, b, opts.Render)
	})
}

func solve(ctx context.Context, b Burrow, render bool) (puzzle.Answer, error) {
	if !render {
		return Organize(ctx, b)
	}
	steps, err := Plan(ctx, b)
	if err != nil {
		return nil, err
	}
	diagrams := make([]string, len(steps))
	for i, s := range steps {
		diagrams[i] = s.String()
	}
	return strings.Join(diagrams, "\n\n"), nil
}

// Organize returns the least total energy that brings every amphipod home.
func Organize(ctx context.Context, b Burrow) (int64, error) {
	res, err := search(ctx, b, false)
	if err != nil {
		return 0, err
	}
	return res.Distance, nil
}

// Plan returns the burrow states along one cheapest solution, start first.
func Plan(ctx context.Context, b Burrow) ([]Burrow, error) {
	res, err := search(ctx, b, true)
	if err != nil {
		return nil, err
	}
	return res.Path(), nil
}

func search(ctx context.Context, b Burrow, path bool) (*dijkstra.Result[Burrow], error) {
	opts := []dijkstra.Option[Burrow]{
		dijkstra.WithTarget(Burrow.Organized),
		dijkstra.WithContext[Burrow](ctx),
	}
	if path {
		opts = append(opts, dijkstra.WithReturnPath[Burrow]())
	}
	res, err := dijkstra.Search(b, Burrow.Moves, opts...)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Int("depth", b.Depth).
		Int("settled", len(res.Dist)).
		Int64("energy", res.Distance).
		Msg("burrow organised")
	return res, nil
}
