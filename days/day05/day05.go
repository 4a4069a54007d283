// Package day05 solves "Hydrothermal Venture": counting points covered by
// at least two vent lines.
package day05

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/xmath"
)

// ErrBadSlope is returned for a line that is neither axis-aligned nor at 45°.
var ErrBadSlope = errors.New("day05: line is not horizontal, vertical or diagonal")

// Line is a vent segment with inclusive end points.
type Line struct {
	From, To xmath.PtInt
}

// Diagonal reports whether the line is at 45°.
func (l Line) Diagonal() bool { return l.From.X != l.To.X && l.From.Y != l.To.Y }

func init() {
	puzzle.Register(5, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		lines, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Overlaps(lines, false)
	})
	puzzle.Register(5, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		lines, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Overlaps(lines, true)
	})
}

// Parse reads "x1,y1 -> x2,y2" lines.
func Parse(in []byte) ([]Line, error) {
	var out []Line
	for i, s := range parse.Lines(in) {
		var l Line
		if err := parse.Scanf(s, "%d,%d -> %d,%d", &l.From.X, &l.From.Y, &l.To.X, &l.To.Y); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if l.From.X < 0 || l.From.Y < 0 || l.To.X < 0 || l.To.Y < 0 {
			return nil, parse.Malformed("line %d: negative coordinate", i+1)
		}
		out = append(out, l)
	}
	return out, nil
}

// Overlaps draws every line on a grid and counts cells covered at least twice.
// Diagonals are skipped unless withDiagonals is set.
func Overlaps(lines []Line, withDiagonals bool) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	var w, h int
	for _, l := range lines {
		w = max(w, l.From.X+1, l.To.X+1)
		h = max(h, l.From.Y+1, l.To.Y+1)
	}
	g, err := grid.New[uint16](w, h)
	if err != nil {
		return 0, err
	}
	for _, l := range lines {
		if l.Diagonal() {
			if xmath.AbsDiff(l.From.X, l.To.X) != xmath.AbsDiff(l.From.Y, l.To.Y) {
				return 0, fmt.Errorf("%w: %v", ErrBadSlope, l)
			}
			if !withDiagonals {
				continue
			}
		}
		step := xmath.PtInt{X: xmath.Sign(l.To.X - l.From.X), Y: xmath.Sign(l.To.Y - l.From.Y)}
		for p := l.From; ; p = p.Add(step) {
			g.Set(p.X, p.Y, g.At(p.X, p.Y)+1)
			if p == l.To {
				break
			}
		}
	}
	return g.Count(func(v uint16) bool { return v >= 2 }), nil
}
