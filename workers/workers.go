// Package workers fans independent work items out to a bounded number of
// goroutines and gathers the results in input order.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every element of in using at most n goroutines and
// returns the results in the same order as in. The first error cancels the
// context passed to the remaining calls and is returned; items not yet
// started are skipped. n <= 0 means one goroutine per item.
func Map[In, Out any](ctx context.Context, n int, in []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))
	g, gctx := errgroup.WithContext(ctx)
	if n > 0 {
		g.SetLimit(n)
	}
	for i, v := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, v)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The parent may have been cancelled before any item ran.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Chunks splits [0, total) into at most n contiguous half-open ranges of
// near-equal size. It is used to hand each worker a slice of a sweep.
func Chunks(total, n int) [][2]int {
	if total <= 0 {
		return nil
	}
	if n <= 0 || n > total {
		n = total
	}
	out := make([][2]int, 0, n)
	size, rem := total/n, total%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}
