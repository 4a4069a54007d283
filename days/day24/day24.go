// Package day24 solves "Arithmetic Logic Unit": finding the largest and
// smallest model numbers that MONAD accepts.
package day24

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrNoModelNumber is returned when no digit sequence leaves z at zero.
	ErrNoModelNumber = errors.New("day24: no accepted model number")
	// ErrTooManyStates is returned when the search frontier outgrows MaxStates.
	ErrTooManyStates = errors.New("day24: too many distinct register states")
)

// MaxStates caps the number of distinct register states Search keeps
// between instructions. Each state costs roughly 64 bytes of map storage
// and two frontiers are live at once, so the default bounds the search
// near 2 GiB.
var MaxStates = 1 << 24

func init() {
	puzzle.Register(24, 1, func(ctx context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		prog, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Search(ctx, prog, true)
	})
	puzzle.Register(24, 2, func(ctx context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		prog, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Search(ctx, prog, false)
	})
}

// Search runs prog over every sequence of digits 1-9 and returns the
// largest (or smallest) sequence, read as a decimal number, that ends with
// z == 0.
//
// All branches advance in lockstep. After each instruction, branches with
// identical registers are merged, keeping only the best input so far: the
// remaining program cannot tell them apart. An inp target is cleared before
// merging since its old value is about to be overwritten. Branches that hit
// an invalid div or mod are dropped.
//
// Memory grows with the number of distinct register states, up to 9^k
// after k inputs. For programs built from MONAD's per-digit block, states
// whose z is too large to return to zero are dropped at each input, which
// keeps real puzzle inputs in the low millions. Search fails with
// ErrTooManyStates rather than exceed MaxStates.
func Search(ctx context.Context, prog []Instruction, largest bool) (int, error) {
	log := zerolog.Ctx(ctx)
	better := func(a, b int) bool {
		if largest {
			return a > b
		}
		return a < b
	}
	keep := func(m map[Registers]int, r Registers, n int) {
		if old, ok := m[r]; !ok || better(n, old) {
			m[r] = n
		}
	}

	bounds := zBounds(prog)
	if bounds != nil {
		log.Debug().Int("blocks", len(bounds)).Msg("pruning by z bound")
	}

	states := map[Registers]int{{}: 0}
	digit := 0
	for pc, ins := range prog {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		next := make(map[Registers]int, len(states))
		if ins.Op == OpInp {
			for r, n := range states {
				if bounds != nil && r[3] >= bounds[digit] {
					continue
				}
				for d := 1; d <= 9; d++ {
					r[ins.A] = d
					keep(next, r, n*10+d)
				}
			}
			digit++
			log.Debug().Int("pc", pc+1).Int("states", len(next)).Msg("input digit")
		} else {
			for r, n := range states {
				if ins.exec(&r) == nil {
					keep(next, r, n)
				}
			}
		}
		// Clear the register the next inp will overwrite so more branches merge.
		if pc+1 < len(prog) && prog[pc+1].Op == OpInp {
			reg := prog[pc+1].A
			merged := make(map[Registers]int, len(next))
			for r, n := range next {
				r[reg] = 0
				keep(merged, r, n)
			}
			next = merged
		}
		if len(next) > MaxStates {
			return 0, fmt.Errorf("%w: %d after instruction %d", ErrTooManyStates, len(next), pc+1)
		}
		states = next
	}

	best, found := 0, false
	for r, n := range states {
		if r[3] == 0 && (!found || better(n, best)) {
			best, found = n, true
		}
	}
	if !found {
		return 0, ErrNoModelNumber
	}
	return best, nil
}
