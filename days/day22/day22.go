// Package day22 solves "Reactor Reboot": tracking which cubes are lit after
// a sequence of on/off cuboid steps.
package day22

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// InitRegion is the x,y,z in [-50, 50] region part 1 is limited to.
var InitRegion = Cuboid{Span{-50, 51}, Span{-50, 51}, Span{-50, 51}}

// Step turns every cube in Cuboid on or off.
type Step struct {
	On bool
	Cuboid
}

func init() {
	puzzle.Register(22, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		steps, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Lit(steps, &InitRegion), nil
	})
	puzzle.Register(22, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		steps, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Lit(steps, nil), nil
	})
}

// Parse reads lines like "on x=10..12,y=10..12,z=10..12". Bounds are
// inclusive in the text and stored half-open.
func Parse(in []byte) ([]Step, error) {
	lines := parse.Lines(in)
	steps := make([]Step, 0, len(lines))
	for i, l := range lines {
		var (
			mode                   string
			x1, x2, y1, y2, z1, z2 int
		)
		if err := parse.Scanf(l, "%s x=%d..%d,y=%d..%d,z=%d..%d", &mode, &x1, &x2, &y1, &y2, &z1, &z2); err != nil {
			return nil, err
		}
		if mode != "on" && mode != "off" {
			return nil, parse.Malformed("line %d: unknown mode %q", i+1, mode)
		}
		if x1 > x2 || y1 > y2 || z1 > z2 {
			return nil, parse.Malformed("line %d: inverted range in %q", i+1, l)
		}
		steps = append(steps, Step{
			On:     mode == "on",
			Cuboid: Cuboid{Span{x1, x2 + 1}, Span{y1, y2 + 1}, Span{z1, z2 + 1}},
		})
	}
	return steps, nil
}

// Lit applies steps in order and counts the lit cubes. When clip is
// non-nil only cubes inside it are considered.
//
// The lit set is kept as disjoint cuboids: every step is carved out of
// each of them, and "on" steps are then added whole.
func Lit(steps []Step, clip *Cuboid) int {
	var lit []Cuboid
	for _, s := range steps {
		c := s.Cuboid
		if clip != nil {
			if c = c.Intersect(*clip); c.Empty() {
				continue
			}
		}
		next := make([]Cuboid, 0, len(lit)+1)
		for _, l := range lit {
			next = append(next, l.Subtract(c)...)
		}
		if s.On {
			next = append(next, c)
		}
		lit = next
	}
	total := 0
	for _, c := range lit {
		total += c.Volume()
	}
	return total
}
