// Package dijkstra implements Dijkstra's shortest-path algorithm over
// implicit state spaces.
//
// It processes states in order of increasing distance using a min-heap
// priority queue, relaxing emitted transitions and updating distances
// accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = settled states, E = emitted transitions.
//   - Space: O(V + E) for the distance map and the lazy heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - With a target predicate the search stops at the first settled target.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Search computes shortest distances from start over the state space
// described by next.
//
// Returns:
//
//   - *Result: settled distances, plus target information when WithTarget was used.
//   - err: ErrNilExpander, ErrNegativeWeight, ErrNoPath (target requested but
//     unreachable) or the context error if the search was cancelled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[K comparable](start K, next Expander[K], opts ...Option[K]) (*Result[K], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if next == nil {
		return nil, ErrNilExpander
	}

	// 2) Prepare runner state.
	r := &runner[K]{
		next:    next,
		options: cfg,
		dist:    make(map[K]int64),
		settled: make(map[K]bool),
		res:     &Result[K]{start: start},
	}
	if cfg.ReturnPath {
		r.prev = make(map[K]K)
	}

	// 3) Seed and run.
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Publish settled distances only.
	r.res.Dist = make(map[K]int64, len(r.settled))
	for k := range r.settled {
		r.res.Dist[k] = r.dist[k]
	}
	r.res.prev = r.prev
	if cfg.Target != nil && !r.res.Found {
		return r.res, ErrNoPath
	}

	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[K comparable] struct {
	next    Expander[K]
	options Options[K]
	dist    map[K]int64 // best-known distance per discovered state
	prev    map[K]K     // predecessor on the best-known path (nil unless ReturnPath)
	settled map[K]bool  // states whose distance is final
	pq      statePQ[K]
	res     *Result[K]
	err     error // first expander violation, reported after relax returns
}

// init pushes the start state with distance 0 onto the heap.
func (r *runner[K]) init(start K) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem[K]{state: start, dist: 0})
}

// process is the core loop. It repeatedly extracts the state with the
// minimum distance and relaxes its transitions.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - A target state is settled.
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is done.
func (r *runner[K]) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem[K])
		u, d := item.state, item.dist

		// Skip stale heap entries.
		if r.settled[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		r.settled[u] = true

		if cfg.Target != nil && cfg.Target(u) {
			r.res.Found = true
			r.res.Target = u
			r.res.Distance = d
			return nil
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax asks the expander for the successors of u and records every strict
// improvement.
func (r *runner[K]) relax(u K, du int64) error {
	r.next(u, func(v K, w int64) {
		if r.err != nil {
			return
		}
		if w < 0 {
			r.err = fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, v, w)
			return
		}
		if r.settled[v] {
			return
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			return
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			return
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &stateItem[K]{state: v, dist: nd})
	})

	return r.err
}

// stateItem represents a state and its tentative distance from the start.
type stateItem[K comparable] struct {
	state K
	dist  int64
}

// statePQ is a min-heap of *stateItem ordered by dist ascending.
type statePQ[K comparable] []*stateItem[K]

// Len returns the number of items in the heap.
func (pq statePQ[K]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq statePQ[K]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq statePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ[K]) Push(x any) { *pq = append(*pq, x.(*stateItem[K])) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *statePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
