// Package day19 solves "Beacon Scanner": reconstructing a shared map from
// scanners that each see a rotated, translated subset of the beacons.
package day19

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
	"github.com/katalvlaran/aoc2021/workers"
	"github.com/katalvlaran/aoc2021/xmath"
)

// MinOverlap is the number of shared beacons that confirms an alignment.
const MinOverlap = 12

// ErrUnaligned is returned when some scanner overlaps none of the others.
var ErrUnaligned = errors.New("day19: scanners cannot all be aligned")

// Scanner is one scanner's report in its own frame.
type Scanner struct {
	ID      int
	Beacons []xmath.Pt3Int
}

// Map is the assembled picture in scanner 0's frame.
type Map struct {
	Beacons   map[xmath.Pt3Int]struct{}
	Positions []xmath.Pt3Int // indexed like the input scanners
}

func init() {
	puzzle.Register(19, 1, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		m, err := solve(ctx, in, opts)
		if err != nil {
			return nil, err
		}
		return len(m.Beacons), nil
	})
	puzzle.Register(19, 2, func(ctx context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		m, err := solve(ctx, in, opts)
		if err != nil {
			return nil, err
		}
		return m.Spread(), nil
	})
}

func solve(ctx context.Context, in []byte, opts puzzle.Options) (*Map, error) {
	scanners, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return Align(ctx, scanners, opts.WorkerCount())
}

// Parse reads "--- scanner N ---" blocks of x,y,z lines.
func Parse(in []byte) ([]Scanner, error) {
	blocks := parse.Blocks(in)
	if len(blocks) == 0 {
		return nil, parse.Malformed("no scanners")
	}
	out := make([]Scanner, 0, len(blocks))
	for _, b := range blocks {
		var s Scanner
		if err := parse.Scanf(strings.TrimSpace(b[0]), "--- scanner %d ---", &s.ID); err != nil {
			return nil, err
		}
		for _, l := range b[1:] {
			v, err := parse.Ints(l, ",")
			if err != nil {
				return nil, fmt.Errorf("scanner %d: %w", s.ID, err)
			}
			if len(v) != 3 {
				return nil, parse.Malformed("scanner %d: want x,y,z, got %q", s.ID, l)
			}
			s.Beacons = append(s.Beacons, xmath.Pt3Int{X: v[0], Y: v[1], Z: v[2]})
		}
		out = append(out, s)
	}
	return out, nil
}

// placement is a scanner moved into the shared frame.
type placement struct {
	pos     xmath.Pt3Int
	beacons []xmath.Pt3Int
}

// match looks for a rotation and offset that put at least MinOverlap of s's
// beacons on top of ref's.
func match(ref []xmath.Pt3Int, s []xmath.Pt3Int) (placement, bool) {
	for _, r := range rotations {
		rotated := make([]xmath.Pt3Int, len(s))
		for i, b := range s {
			rotated[i] = r.Apply(b)
		}
		votes := make(map[xmath.Pt3Int]int)
		for _, a := range ref {
			for _, b := range rotated {
				off := a.Sub(b)
				votes[off]++
				if votes[off] < MinOverlap {
					continue
				}
				for i := range rotated {
					rotated[i] = rotated[i].Add(off)
				}
				return placement{pos: off, beacons: rotated}, true
			}
		}
	}
	return placement{}, false
}

// Align places every scanner relative to scanner 0. Each newly placed
// scanner is compared once against every scanner still unplaced; the
// comparisons for one reference run on n workers.
func Align(ctx context.Context, scanners []Scanner, n int) (*Map, error) {
	if len(scanners) == 0 {
		return nil, parse.Malformed("no scanners")
	}
	log := zerolog.Ctx(ctx)

	placed := make([]*placement, len(scanners))
	placed[0] = &placement{beacons: scanners[0].Beacons}
	frontier := []int{0}
	remaining := len(scanners) - 1

	for remaining > 0 {
		if len(frontier) == 0 {
			return nil, fmt.Errorf("%w: %d left over", ErrUnaligned, remaining)
		}
		ref := frontier[0]
		frontier = frontier[1:]

		var todo []int
		for i, p := range placed {
			if p == nil {
				todo = append(todo, i)
			}
		}
		found, err := workers.Map(ctx, n, todo, func(_ context.Context, i int) (*placement, error) {
			if p, ok := match(placed[ref].beacons, scanners[i].Beacons); ok {
				return &p, nil
			}
			return nil, nil
		})
		if err != nil {
			return nil, err
		}
		for k, p := range found {
			if p == nil {
				continue
			}
			i := todo[k]
			placed[i] = p
			frontier = append(frontier, i)
			remaining--
			log.Debug().Int("scanner", scanners[i].ID).Int("via", scanners[ref].ID).
				Interface("pos", p.pos).Msg("scanner aligned")
		}
	}

	m := &Map{
		Beacons:   make(map[xmath.Pt3Int]struct{}),
		Positions: make([]xmath.Pt3Int, len(scanners)),
	}
	for i, p := range placed {
		m.Positions[i] = p.pos
		for _, b := range p.beacons {
			m.Beacons[b] = struct{}{}
		}
	}
	return m, nil
}

// Spread is the largest Manhattan distance between any two scanners.
func (m *Map) Spread() int {
	best := 0
	for i, a := range m.Positions {
		for _, b := range m.Positions[i+1:] {
			best = max(best, a.MDist(b))
		}
	}
	return best
}
