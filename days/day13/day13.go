// Package day13 solves "Transparent Origami": folding a sheet of dots.
package day13

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// Fold is a fold instruction along x=At or y=At.
type Fold struct {
	Axis byte
	At   int
}

// Sheet is the set of visible dots.
type Sheet map[xmath.PtInt]struct{}

// Manual is the puzzle input.
type Manual struct {
	Dots  Sheet
	Folds []Fold
}

func init() {
	puzzle.Register(13, 1, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		m, err := Parse(in)
		if err != nil {
			return nil, err
		}
		if len(m.Folds) == 0 {
			return nil, parse.Malformed("no fold instructions")
		}
		s := m.Dots.Fold(m.Folds[0])
		if opts.Render {
			return s.Render()
		}
		return len(s), nil
	})
	puzzle.Register(13, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		m, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(m)
	})
}

// Parse reads "x,y" dots, a blank line, then "fold along a=n" lines.
func Parse(in []byte) (*Manual, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 {
		return nil, parse.Malformed("want dots and folds separated by a blank line")
	}
	m := &Manual{Dots: make(Sheet, len(blocks[0]))}
	for i, line := range blocks[0] {
		var p xmath.PtInt
		if err := parse.Scanf(line, "%d,%d", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("dot %d: %w", i+1, err)
		}
		if p.X < 0 || p.Y < 0 {
			return nil, parse.Malformed("dot %d: negative coordinate", i+1)
		}
		m.Dots[p] = struct{}{}
	}
	for i, line := range blocks[1] {
		var f Fold
		if err := parse.Scanf(line, "fold along %c=%d", &f.Axis, &f.At); err != nil {
			return nil, fmt.Errorf("fold %d: %w", i+1, err)
		}
		if f.Axis != 'x' && f.Axis != 'y' {
			return nil, parse.Malformed("fold %d: axis %q", i+1, f.Axis)
		}
		m.Folds = append(m.Folds, f)
	}
	return m, nil
}

// Fold mirrors every dot past the fold line onto the near half. Dots on the
// line itself disappear.
func (s Sheet) Fold(f Fold) Sheet {
	out := make(Sheet, len(s))
	for p := range s {
		switch {
		case f.Axis == 'x' && p.X > f.At:
			p.X = 2*f.At - p.X
		case f.Axis == 'y' && p.Y > f.At:
			p.Y = 2*f.At - p.Y
		case f.Axis == 'x' && p.X == f.At, f.Axis == 'y' && p.Y == f.At:
			continue
		}
		out[p] = struct{}{}
	}
	return out
}

// Render draws the sheet with '#' for dots and '.' elsewhere.
func (s Sheet) Render() (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	var w, h int
	for p := range s {
		if p.X < 0 || p.Y < 0 {
			return "", parse.Malformed("dot %v folded to a negative coordinate", p)
		}
		w, h = max(w, p.X+1), max(h, p.Y+1)
	}
	g, err := grid.New[uint8](w, h)
	if err != nil {
		return "", err
	}
	for p := range s {
		g.Set(p.X, p.Y, 1)
	}
	return g.Render(func(v uint8) byte { return ".#"[v] }), nil
}

// Dots applies every fold and returns the number of visible dots.
func Dots(m *Manual) int {
	s := m.Dots
	for _, f := range m.Folds {
		s = s.Fold(f)
	}
	return len(s)
}

// Part1 counts dots after the first fold.
func Part1(m *Manual) (int, error) {
	if len(m.Folds) == 0 {
		return 0, parse.Malformed("no fold instructions")
	}
	return len(m.Dots.Fold(m.Folds[0])), nil
}

// Part2 applies every fold and renders the resulting code.
func Part2(m *Manual) (string, error) {
	s := m.Dots
	for _, f := range m.Folds {
		s = s.Fold(f)
	}
	return s.Render()
}
