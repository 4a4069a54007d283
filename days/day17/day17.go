// Package day17 solves "Trick Shot": sweeping probe launch velocities that
// land in a target area.
package day17

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/workers"
	"github.com/katalvlaran/aoc2021/xmath"
)

// ErrUnsupportedTarget is returned for targets that straddle x=0 or are not
// fully below the launch point; the velocity sweep is unbounded there.
var ErrUnsupportedTarget = errors.New("day17: target must lie below the launcher and to one side")

// Target is the inclusive landing rectangle.
type Target struct {
	X1, X2, Y1, Y2 int
}

// Summary aggregates every successful launch.
type Summary struct {
	Hits    int
	MaxApex int
}

func init() {
	puzzle.Register(17, 1, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		s, err := solve(ctx, in, opts)
		if err != nil {
			return nil, err
		}
		return s.MaxApex, nil
	})
	puzzle.Register(17, 2, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		s, err := solve(ctx, in, opts)
		if err != nil {
			return nil, err
		}
		return s.Hits, nil
	})
}

func solve(ctx context.Context, in []byte, opts puzzle.Options) (Summary, error) {
	t, err := Parse(in)
	if err != nil {
		return Summary{}, err
	}
	return Sweep(ctx, t, opts.WorkerCount())
}

// Parse reads "target area: x=a..b, y=c..d".
func Parse(in []byte) (Target, error) {
	var t Target
	if err := parse.Scanf(parse.Text(in), "target area: x=%d..%d, y=%d..%d", &t.X1, &t.X2, &t.Y1, &t.Y2); err != nil {
		return t, err
	}
	if t.X1 > t.X2 {
		t.X1, t.X2 = t.X2, t.X1
	}
	if t.Y1 > t.Y2 {
		t.Y1, t.Y2 = t.Y2, t.Y1
	}
	return t, nil
}

// Fire simulates a launch and reports whether it lands in t and the highest
// y reached on the way.
func (t Target) Fire(vx, vy int) (hit bool, apex int) {
	var x, y int
	for {
		x, y = x+vx, y+vy
		vx -= xmath.Sign(vx)
		vy--
		apex = max(apex, y)
		if x >= t.X1 && x <= t.X2 && y >= t.Y1 && y <= t.Y2 {
			return true, apex
		}
		if x > t.X2 || y < t.Y1 {
			return false, apex
		}
	}
}

// Sweep tries every launch velocity that could reach t, one horizontal
// velocity per work item, spread over n workers.
//
// Bounds: vx in [1, X2] (anything faster overshoots on the first step);
// vy in [Y1, -Y1-1] (a probe launched upward returns to y=0 with speed
// -vy-1, so anything faster falls through the target).
func Sweep(ctx context.Context, t Target, n int) (Summary, error) {
	// Launches are symmetric in x.
	if t.X2 < 0 {
		t.X1, t.X2 = -t.X2, -t.X1
	}
	if t.X1 <= 0 || t.Y2 >= 0 {
		return Summary{}, fmt.Errorf("%w: %+v", ErrUnsupportedTarget, t)
	}

	vxs := make([]int, t.X2)
	for i := range vxs {
		vxs[i] = i + 1
	}
	rows, err := workers.Map(ctx, n, vxs, func(_ context.Context, vx int) (Summary, error) {
		var s Summary
		for vy := t.Y1; vy <= -t.Y1-1; vy++ {
			if hit, apex := t.Fire(vx, vy); hit {
				s.Hits++
				s.MaxApex = max(s.MaxApex, apex)
			}
		}
		return s, nil
	})
	if err != nil {
		return Summary{}, err
	}
	var total Summary
	for _, r := range rows {
		total.Hits += r.Hits
		total.MaxApex = max(total.MaxApex, r.MaxApex)
	}
	return total, nil
}
